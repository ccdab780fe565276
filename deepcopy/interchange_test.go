package deepcopy

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type event struct {
	Name   string    `json:"name" msgpack:"name"`
	At     time.Time `json:"at" msgpack:"at"`
	Tags   []string  `json:"tags" msgpack:"tags"`
	Secret string    `json:"-" msgpack:"-"`
}

func TestJSONCopy(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	in := event{Name: "deploy", At: at, Tags: []string{"prod"}, Secret: "s"}

	got, err := JSONCopy(in)
	if err != nil {
		t.Fatalf("JSONCopy() error = %v", err)
	}

	want := map[string]any{
		"name": "deploy",
		"at":   "2024-05-01T08:30:00Z",
		"tags": []any{"prod"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSONCopy() mismatch (-want +got):\n%s", diff)
	}

	nums, err := JSONCopy([]int{1, 2})
	if err != nil {
		t.Fatalf("JSONCopy() error = %v", err)
	}
	if diff := cmp.Diff([]any{1.0, 2.0}, nums); diff != "" {
		t.Errorf("JSONCopy() numbers mismatch (-want +got):\n%s", diff)
	}
}

func TestJSONCopyUnsupported(t *testing.T) {
	_, err := JSONCopy(map[string]any{"fn": func() {}})
	if err == nil {
		t.Fatal("JSONCopy() with a func succeeded, want error")
	}

	var codecErr *CodecError
	if !errors.As(err, &codecErr) {
		t.Fatalf("JSONCopy() error = %T, want *CodecError", err)
	}
	if codecErr.Codec != "json" || codecErr.Op != "marshal" {
		t.Errorf("CodecError = %+v, want json marshal", codecErr)
	}
}

func TestMsgpackCopy(t *testing.T) {
	at := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)

	got, err := MsgpackCopy(event{Name: "deploy", At: at, Tags: []string{"prod"}})
	if err != nil {
		t.Fatalf("MsgpackCopy() error = %v", err)
	}

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("MsgpackCopy() = %T, want map[string]any", got)
	}

	if m["name"] != "deploy" {
		t.Errorf("name = %v, want deploy", m["name"])
	}

	gotAt, ok := m["at"].(time.Time)
	if !ok || !gotAt.Equal(at) {
		t.Errorf("at = %v, want %v", m["at"], at)
	}

	if diff := cmp.Diff([]any{"prod"}, m["tags"]); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}

	if _, ok := m["Secret"]; ok {
		t.Error("skipped field was encoded")
	}
}

func TestCopyInto(t *testing.T) {
	in := event{Name: "n", Tags: []string{"a"}, Secret: "s"}

	for _, codec := range []Codec{JSON, Msgpack} {
		t.Run(codec.Name(), func(t *testing.T) {
			var out event
			if err := CopyInto(&out, in, codec); err != nil {
				t.Fatalf("CopyInto() error = %v", err)
			}

			if out.Name != "n" || len(out.Tags) != 1 || out.Tags[0] != "a" {
				t.Errorf("CopyInto() = %+v", out)
			}
			if out.Secret != "" {
				t.Errorf("CopyInto() kept skipped field: %q", out.Secret)
			}

			out.Tags[0] = "b"
			if in.Tags[0] != "a" {
				t.Error("CopyInto() shares slices with the source")
			}
		})
	}
}

func TestInterchangeCopyNilCodec(t *testing.T) {
	if _, err := InterchangeCopy(1, nil); !errors.Is(err, ErrNilCodec) {
		t.Errorf("InterchangeCopy(nil codec) error = %v, want ErrNilCodec", err)
	}

	var out int
	if err := CopyInto(&out, 1, nil); !errors.Is(err, ErrNilCodec) {
		t.Errorf("CopyInto(nil codec) error = %v, want ErrNilCodec", err)
	}
}
