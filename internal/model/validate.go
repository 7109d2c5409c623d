package model

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"resume-builder/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/profile.schema.json
var profileSchema []byte

// ErrInvalid marks input rejected by schema validation.
var ErrInvalid = errors.New("invalid payload")

var (
	compileOnce sync.Once
	compileErr  error
	schemas     map[string]*gojsonschema.Schema
)

// slot schemas by definition name; resume_data accepts any JSON value.
// Every slot also accepts null, which the form writes for a cleared field.
var slotDefinitions = map[domain.DraftSlot]string{
	domain.SlotUserType:          "userType",
	domain.SlotAdditionalInfo:    "additionalInfo",
	domain.SlotProjectExperience: "projectDraft",
	domain.SlotSelectedModel:     "selectedModel",
}

func compile() {
	var doc map[string]interface{}
	if err := json.Unmarshal(profileSchema, &doc); err != nil {
		compileErr = fmt.Errorf("parse profile schema: %w", err)
		return
	}
	defs := doc["definitions"]

	schemas = make(map[string]*gojsonschema.Schema, len(slotDefinitions)+2)
	add := func(key string, root map[string]interface{}) bool {
		root["definitions"] = defs
		s, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(root))
		if err != nil {
			compileErr = fmt.Errorf("compile schema %s: %w", key, err)
			return false
		}
		schemas[key] = s
		return true
	}

	for _, name := range []string{"generateRequest", "projectDraft"} {
		if !add(name, map[string]interface{}{"allOf": []interface{}{ref(name)}}) {
			return
		}
	}
	for _, name := range slotDefinitions {
		root := map[string]interface{}{
			"oneOf": []interface{}{map[string]interface{}{"type": "null"}, ref(name)},
		}
		if !add(slotKey(name), root) {
			return
		}
	}
}

func ref(name string) map[string]interface{} {
	return map[string]interface{}{"$ref": "#/definitions/" + name}
}

func slotKey(name string) string { return "slot:" + name }

func validate(name string, raw []byte) error {
	compileOnce.Do(compile)
	if compileErr != nil {
		return compileErr
	}
	if !json.Valid(raw) {
		return fmt.Errorf("%w: body is not valid JSON", ErrInvalid)
	}
	res, err := schemas[name].Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: schema validation failed: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// DecodeGenerationInput validates raw against the generate request schema
// and decodes it. A nil project list becomes empty.
func DecodeGenerationInput(raw []byte) (domain.GenerationInput, error) {
	var in domain.GenerationInput
	if err := validate("generateRequest", raw); err != nil {
		return in, err
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		return in, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if in.ProjectExperiences == nil {
		in.ProjectExperiences = []domain.ProjectExperience{}
	}
	return in, nil
}

// ValidateSlot checks a draft slot value. Unknown slots are rejected.
func ValidateSlot(slot domain.DraftSlot, raw []byte) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalid, string(slot))
	}
	name, ok := slotDefinitions[slot]
	if !ok {
		if !json.Valid(raw) {
			return fmt.Errorf("%w: body is not valid JSON", ErrInvalid)
		}
		return nil
	}
	return validate(slotKey(name), raw)
}

// IsNull reports whether raw is the JSON literal null.
func IsNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// DecodeProjectDraft validates and decodes a project_experience slot value.
func DecodeProjectDraft(raw []byte) (domain.ProjectDraft, error) {
	var pd domain.ProjectDraft
	if err := validate("projectDraft", raw); err != nil {
		return pd, err
	}
	if err := json.Unmarshal(raw, &pd); err != nil {
		return pd, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return pd, nil
}
