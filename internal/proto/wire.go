package proto

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Wire shapes carried inside structpb values. Field names match the JSON API.

type Todo struct {
	Content   string `json:"content"`
	Completed bool   `json:"completed"`
}

type Card struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Todos  []Todo   `json:"todos"`
	Labels []string `json:"labels"`
}

type CardDraft struct {
	Title string   `json:"title"`
	Todos []string `json:"todos"`
}

type CardUpdate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Todos []Todo `json:"todos"`
}

type Label struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type LabelsRequest struct {
	ID     string   `json:"id"`
	Labels []string `json:"labels"`
}

type LabelsResponse struct {
	Labels []Label `json:"labels"`
}

// ToStruct encodes v, which must marshal to a JSON object.
func ToStruct(v any) (*structpb.Struct, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("encode struct: %w", err)
	}
	return structpb.NewStruct(m)
}

// FromStruct decodes s into v.
func FromStruct(s *structpb.Struct, v any) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

// ToList encodes v, which must marshal to a JSON array.
func ToList(v any) (*structpb.ListValue, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var items []any
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("encode list: %w", err)
	}
	return structpb.NewList(items)
}

// FromList decodes l into v.
func FromList(l *structpb.ListValue, v any) error {
	if l == nil {
		l = &structpb.ListValue{}
	}
	b, err := protojson.Marshal(l)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
