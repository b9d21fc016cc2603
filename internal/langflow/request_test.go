package langflow

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseTweaks_Empty(t *testing.T) {
	tweaks, err := ParseTweaks("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tweaks != nil {
		t.Errorf("expected nil tweaks, got %v", tweaks)
	}
}

func TestParseTweaks_Valid(t *testing.T) {
	input := `{"ChatInput-D9hjW": {"input_value": "hi"}, "GroqModel-ZMgtx": {}}`

	tweaks, err := ParseTweaks(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Tweaks{
		"ChatInput-D9hjW": {"input_value": "hi"},
		"GroqModel-ZMgtx": {},
	}
	if !reflect.DeepEqual(tweaks, want) {
		t.Errorf("expected %v, got %v", want, tweaks)
	}
}

func TestParseTweaks_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "broken JSON", input: `{"a": `},
		{name: "array instead of object", input: `[1, 2]`},
		{name: "scalar component value", input: `{"comp": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTweaks(tt.input)
			if !errors.Is(err, ErrInvalidTweaks) {
				t.Errorf("expected ErrInvalidTweaks, got %v", err)
			}
		})
	}
}

func TestAttachFile_CreatesComponentMaps(t *testing.T) {
	file := UploadedFile{FilePath: "2024/data.csv"}

	tweaks, overwritten := AttachFile(nil, file, []string{"ParseData-r4Fhk", "File-Ab12"})

	if len(overwritten) != 0 {
		t.Errorf("expected no overwrites, got %v", overwritten)
	}
	for _, id := range []string{"ParseData-r4Fhk", "File-Ab12"} {
		if got := tweaks[id][TweakPathKey]; got != "2024/data.csv" {
			t.Errorf("component %s: expected file path, got %v", id, got)
		}
	}
}

func TestAttachFile_PreservesOtherKeys(t *testing.T) {
	tweaks := Tweaks{
		"ParseData-r4Fhk": {"sep": ";"},
	}

	tweaks, _ = AttachFile(tweaks, UploadedFile{FilePath: "f.csv"}, []string{"ParseData-r4Fhk"})

	if got := tweaks["ParseData-r4Fhk"]["sep"]; got != ";" {
		t.Errorf("expected user tweak preserved, got %v", got)
	}
	if got := tweaks["ParseData-r4Fhk"][TweakPathKey]; got != "f.csv" {
		t.Errorf("expected injected path, got %v", got)
	}
}

func TestAttachFile_OverwritesUserPath(t *testing.T) {
	tweaks := Tweaks{
		"File-Ab12": {TweakPathKey: "/user/supplied"},
	}

	tweaks, overwritten := AttachFile(tweaks, UploadedFile{FilePath: "remote.csv"}, []string{"File-Ab12"})

	if got := tweaks["File-Ab12"][TweakPathKey]; got != "remote.csv" {
		t.Errorf("expected file reference to win, got %v", got)
	}
	if !reflect.DeepEqual(overwritten, []string{"File-Ab12"}) {
		t.Errorf("expected overwrite reported for File-Ab12, got %v", overwritten)
	}
}

func TestNewRunRequest_Defaults(t *testing.T) {
	req := NewRunRequest("hello", "", "", "", nil)

	if req.InputType != DefaultIOType || req.OutputType != DefaultIOType {
		t.Errorf("expected %q/%q defaults, got %q/%q",
			DefaultIOType, DefaultIOType, req.InputType, req.OutputType)
	}
	if req.InputValue != "hello" {
		t.Errorf("expected message, got %q", req.InputValue)
	}
	if req.SessionID != "" {
		t.Errorf("expected empty session ID, got %q", req.SessionID)
	}
}

func TestNewRunRequest_ExplicitTypes(t *testing.T) {
	req := NewRunRequest("hello", "text", "json", "sess-1", Tweaks{"c": {}})

	if req.InputType != "text" || req.OutputType != "json" {
		t.Errorf("expected explicit types, got %q/%q", req.InputType, req.OutputType)
	}
	if req.SessionID != "sess-1" {
		t.Errorf("expected session ID, got %q", req.SessionID)
	}
}
