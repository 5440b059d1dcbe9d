package instrument

import (
	"reflect"
	"testing"
)

func TestMaskDataNestedMap(t *testing.T) {
	maskKeys := buildMaskKeys([]string{"otp", " X-API-Key "})

	got := MaskData(map[string]any{
		"identifier": "user@example.com",
		"otp":        "482913",
		"headers": map[string]any{
			"x-api-key": "secret",
			"accept":    "application/json",
		},
	}, maskKeys)

	want := map[string]any{
		"identifier": "user@example.com",
		"otp":        "***",
		"headers": map[string]any{
			"x-api-key": "***",
			"accept":    "application/json",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MaskData() = %#v, want %#v", got, want)
	}
}

func TestMaskDataSlice(t *testing.T) {
	maskKeys := buildMaskKeys([]string{"otp"})

	got := MaskData([]any{
		map[string]any{"otp": "111111"},
		map[string]any{"otp": "222222"},
	}, maskKeys)

	want := []any{
		map[string]any{"otp": "***"},
		map[string]any{"otp": "***"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MaskData() = %#v, want %#v", got, want)
	}
}

func TestMaskJSONString(t *testing.T) {
	maskKeys := buildMaskKeys([]string{"otp"})

	masked, ok := maskJSONString(`{"identifier":"a@b.c","otp":"482913"}`, maskKeys)
	if !ok {
		t.Fatal("maskJSONString() ok = false, want true")
	}
	if masked != `{"identifier":"a@b.c","otp":"***"}` {
		t.Errorf("maskJSONString() = %s", masked)
	}

	if _, ok := maskJSONString("plain text", maskKeys); ok {
		t.Error("maskJSONString() masked non-JSON input")
	}
}
