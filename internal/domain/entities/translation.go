package entities

import (
	"bytes"
	"encoding/json"
)

// Result is one translated text with the source language the provider detected.
type Result struct {
	Text               string `json:"text"`
	DetectedSourceLang string `json:"detected_source_language"`
}

// Response is what a translation provider hands back: either a single Result
// (some providers collapse a one-text batch) or an ordered batch.
type Response struct {
	single *Result
	batch  []Result
}

// SingleResponse wraps a bare result.
func SingleResponse(r Result) Response { return Response{single: &r} }

// BatchResponse wraps an ordered batch of results.
func BatchResponse(rs []Result) Response { return Response{batch: rs} }

// IsSingle reports whether the provider returned a bare result.
func (r Response) IsSingle() bool { return r.single != nil }

// Normalize returns the results as a sequence: a bare result becomes a one-element slice.
func (r Response) Normalize() []Result {
	if r.single != nil {
		return []Result{*r.single}
	}
	return r.batch
}

// UnmarshalJSON accepts either a JSON object (single result) or an array (batch).
func (r *Response) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var single Result
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*r = SingleResponse(single)
		return nil
	}
	var batch []Result
	if err := json.Unmarshal(trimmed, &batch); err != nil {
		return err
	}
	*r = BatchResponse(batch)
	return nil
}
