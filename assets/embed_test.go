package assets

import "testing"

func TestLoadPCM(t *testing.T) {
	for _, class := range []string{"small", "medium", "big"} {
		t.Run(class, func(t *testing.T) {
			pcm, err := LoadPCM("assets/" + VolleyCue(class))
			if err != nil {
				t.Fatalf("load cue: %v", err)
			}
			if len(pcm) == 0 || len(pcm)%4 != 0 {
				t.Fatalf("expected whole 16-bit stereo frames, got %d bytes", len(pcm))
			}
		})
	}
}

func TestLoadPCMMissing(t *testing.T) {
	if _, err := LoadPCM("volley_huge.wav"); err == nil {
		t.Fatal("expected error for missing cue")
	}
}
