package platform

import "testing"

func TestFrame(t *testing.T) {
	f := Frame{WindowWidth: 1280, WindowHeight: 720}
	if a := f.Aspect(); a != float32(1280)/720 {
		t.Fatalf("Frame.Aspect\nhave %v\nwant %v", a, float32(1280)/720)
	}
	if a := (Frame{}).Aspect(); a != 1 {
		t.Fatalf("empty Frame.Aspect\nhave %v\nwant 1", a)
	}
	f.Advance(0.25)
	f.Advance(0.5)
	if f.Index != 2 || f.DeltaTime != 0.5 || f.ElapsedTime != 0.75 {
		t.Fatalf("Frame.Advance\nhave %+v", f)
	}
}
