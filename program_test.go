package pica

import (
	"errors"
	"testing"
)

// countReleases swaps releaseUniforms for the duration of the test and
// counts calls per instance.
func countReleases(t *testing.T) map[*Instance]int {
	t.Helper()
	counts := make(map[*Instance]int)
	orig := releaseUniforms
	releaseUniforms = func(si *Instance) {
		counts[si]++
		orig(si)
	}
	t.Cleanup(func() { releaseUniforms = orig })
	return counts
}

func TestNewProgramEmpty(t *testing.T) {
	p := NewProgram()
	if p.VertexStage() != nil || p.GeometryStage() != nil {
		t.Error("NewProgram() has stages attached")
	}
}

func TestSetVertexStage(t *testing.T) {
	p := NewProgram()
	d := testVertexDescriptor()
	if err := p.SetVertexStage(d); err != nil {
		t.Fatalf("SetVertexStage() error = %v", err)
	}
	if p.VertexStage() == nil || p.VertexStage().Descriptor() != d {
		t.Error("VertexStage() does not reference the descriptor")
	}
	if p.VertexStage().Stage() != StageVertex {
		t.Errorf("Stage() = %v, want Vertex", p.VertexStage().Stage())
	}
}

func TestSetVertexStageRejectsGeometry(t *testing.T) {
	p := NewProgram()
	if err := p.SetVertexStage(testVertexDescriptor()); err != nil {
		t.Fatalf("SetVertexStage() error = %v", err)
	}
	orig := p.VertexStage()

	err := p.SetVertexStage(testGeometryDescriptor())
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("SetVertexStage(geometry) error = %v, want ErrInvalidArgument", err)
	}
	if p.VertexStage() != orig || orig.Destroyed() {
		t.Error("rejected SetVertexStage disturbed the existing vertex stage")
	}

	if err := p.SetVertexStage(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetVertexStage(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestSetVertexStageAllocationFailureKeepsStage(t *testing.T) {
	p := NewProgram()
	if err := p.SetVertexStage(testVertexDescriptor()); err != nil {
		t.Fatalf("SetVertexStage() error = %v", err)
	}
	orig := p.VertexStage()

	big := &Descriptor{Stage: StageVertex, Constants: make([]ConstEntry, MaxFloatUniforms+1)}
	for i := range big.Constants {
		big.Constants[i].Kind = ConstFloat24
	}
	if err := p.SetVertexStage(big); !errors.Is(err, ErrAllocation) {
		t.Fatalf("SetVertexStage(big) error = %v, want ErrAllocation", err)
	}
	if p.VertexStage() != orig || orig.Destroyed() {
		t.Error("failed SetVertexStage disturbed the existing vertex stage")
	}
}

func TestSetVertexStageReleasesPreviousOnce(t *testing.T) {
	counts := countReleases(t)

	p := NewProgram()
	if err := p.SetVertexStage(testVertexDescriptor()); err != nil {
		t.Fatalf("SetVertexStage() error = %v", err)
	}
	first := p.VertexStage()

	if err := p.SetVertexStage(testVertexDescriptor()); err != nil {
		t.Fatalf("second SetVertexStage() error = %v", err)
	}
	second := p.VertexStage()

	if first == second {
		t.Fatal("SetVertexStage did not replace the instance")
	}
	if counts[first] != 1 {
		t.Errorf("first instance released %d times, want 1", counts[first])
	}
	if counts[second] != 0 {
		t.Errorf("second instance released %d times, want 0", counts[second])
	}

	p.Destroy()
	if counts[first] != 1 {
		t.Errorf("after Destroy first instance released %d times, want 1", counts[first])
	}
	if counts[second] != 1 {
		t.Errorf("after Destroy second instance released %d times, want 1", counts[second])
	}
}

func TestSetGeometryStage(t *testing.T) {
	p := NewProgram()

	if err := p.SetGeometryStage(testVertexDescriptor(), 3); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("SetGeometryStage(vertex) error = %v, want ErrInvalidArgument", err)
	}
	if p.GeometryStage() != nil {
		t.Error("rejected SetGeometryStage attached a stage")
	}

	if err := p.SetGeometryStage(testGeometryDescriptor(), 3); err != nil {
		t.Fatalf("SetGeometryStage() error = %v", err)
	}
	if got := p.GeometryInputPermutation(); got != [2]uint32{0x76543210, 0xFEDCBA98} {
		t.Errorf("GeometryInputPermutation() = %#08x, want identity", got)
	}
	if p.GeometryInputStride() != 3 {
		t.Errorf("GeometryInputStride() = %d, want 3", p.GeometryInputStride())
	}

	// Re-attaching resets the permutation.
	if err := p.SetGeometryInputPermutation(0x1111111122222222); err != nil {
		t.Fatalf("SetGeometryInputPermutation() error = %v", err)
	}
	prev := p.GeometryStage()
	if err := p.SetGeometryStage(testGeometryDescriptor(), 5); err != nil {
		t.Fatalf("SetGeometryStage() error = %v", err)
	}
	if !prev.Destroyed() {
		t.Error("previous geometry stage not released")
	}
	if got := p.GeometryInputPermutation(); got != [2]uint32{0x76543210, 0xFEDCBA98} {
		t.Errorf("GeometryInputPermutation() after re-attach = %#08x, want identity", got)
	}
}

// The low and high halves land in separate words. Earlier C implementations
// overwrote the low word with the high half; this is a deliberate change.
func TestSetGeometryInputPermutationSplitsHalves(t *testing.T) {
	p := NewProgram()
	if err := p.SetGeometryInputPermutation(0); !errors.Is(err, ErrInvalidState) {
		t.Fatalf("SetGeometryInputPermutation() without geometry error = %v, want ErrInvalidState", err)
	}

	if err := p.SetGeometryStage(testGeometryDescriptor(), 4); err != nil {
		t.Fatalf("SetGeometryStage() error = %v", err)
	}
	if err := p.SetGeometryInputPermutation(0x0123456789ABCDEF); err != nil {
		t.Fatalf("SetGeometryInputPermutation() error = %v", err)
	}
	want := [2]uint32{0x89ABCDEF, 0x01234567}
	if got := p.GeometryInputPermutation(); got != want {
		t.Errorf("GeometryInputPermutation() = %#08x, want %#08x", got, want)
	}
}

func TestProgramDestroy(t *testing.T) {
	p := NewProgram()
	if err := p.SetVertexStage(testVertexDescriptor()); err != nil {
		t.Fatalf("SetVertexStage() error = %v", err)
	}
	if err := p.SetGeometryStage(testGeometryDescriptor(), 3); err != nil {
		t.Fatalf("SetGeometryStage() error = %v", err)
	}
	vsh, gsh := p.VertexStage(), p.GeometryStage()

	p.Destroy()
	if !vsh.Destroyed() || !gsh.Destroyed() {
		t.Error("Destroy did not release both stages")
	}
	if p.VertexStage() != nil || p.GeometryStage() != nil {
		t.Error("Destroy left stages attached")
	}

	p.Destroy() // empty program
}

func TestStage_String(t *testing.T) {
	tests := []struct {
		s    Stage
		want string
	}{
		{StageVertex, "Vertex"},
		{StageGeometry, "Geometry"},
		{Stage(7), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
