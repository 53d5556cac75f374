package entities

import "fmt"

// SlotKind tags where a translated text lives in a message.
type SlotKind int

const (
	SlotBody SlotKind = iota
	SlotTitle
	SlotDescription
	SlotAuthorName
	SlotFooterText
	SlotField
)

// FieldPart selects the name or the value of an embed field.
type FieldPart int

const (
	FieldName FieldPart = iota
	FieldValue
)

// SlotPath identifies one text location in a message: the body, or a part of embed
// Embed. Field and Part only matter for SlotField. SlotPath is comparable and is used
// as a map key.
type SlotPath struct {
	Kind  SlotKind
	Embed int
	Field int
	Part  FieldPart
}

func BodySlot() SlotPath { return SlotPath{Kind: SlotBody} }

func TitleSlot(embed int) SlotPath { return SlotPath{Kind: SlotTitle, Embed: embed} }

func DescriptionSlot(embed int) SlotPath { return SlotPath{Kind: SlotDescription, Embed: embed} }

func AuthorNameSlot(embed int) SlotPath { return SlotPath{Kind: SlotAuthorName, Embed: embed} }

func FooterTextSlot(embed int) SlotPath { return SlotPath{Kind: SlotFooterText, Embed: embed} }

func FieldNameSlot(embed, field int) SlotPath {
	return SlotPath{Kind: SlotField, Embed: embed, Field: field, Part: FieldName}
}

func FieldValueSlot(embed, field int) SlotPath {
	return SlotPath{Kind: SlotField, Embed: embed, Field: field, Part: FieldValue}
}

// IsBody reports whether the slot is the message content.
func (p SlotPath) IsBody() bool { return p.Kind == SlotBody }

// String renders the slot as a dotted path, for logs only.
func (p SlotPath) String() string {
	switch p.Kind {
	case SlotBody:
		return "body"
	case SlotTitle:
		return fmt.Sprintf("%d.title", p.Embed)
	case SlotDescription:
		return fmt.Sprintf("%d.description", p.Embed)
	case SlotAuthorName:
		return fmt.Sprintf("%d.author.name", p.Embed)
	case SlotFooterText:
		return fmt.Sprintf("%d.footer.text", p.Embed)
	case SlotField:
		part := "name"
		if p.Part == FieldValue {
			part = "value"
		}
		return fmt.Sprintf("%d.fields.%d.%s", p.Embed, p.Field, part)
	default:
		return fmt.Sprintf("unknown(%d)", int(p.Kind))
	}
}

// Unit is one extracted text waiting for translation.
type Unit struct {
	Text   string
	Origin SlotPath
}
