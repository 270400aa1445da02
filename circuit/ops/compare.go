package ops

import "fmt"

// RegisterFileDiff names one register whose value differs between two
// compared register files.
type RegisterFileDiff struct {
	Index int
	Left  uint64
	Right uint64
}

// CompareRegisterFiles reports every register index at which a and b
// disagree. The C++ source instead builds a dedicated
// "RegisterFileTester" Design
// (original_source/components/vsrtl_registerfilecmp.h) that wires two
// register files together through adders to exercise them in lockstep.
// A direct snapshot comparison is the more idiomatic Go shape for the
// same need: asserting two independently driven register files ended
// up in the same state.
func CompareRegisterFiles(a, b *RegisterFile) []RegisterFileDiff {
	n := len(a.regs)
	if len(b.regs) < n {
		n = len(b.regs)
	}
	var diffs []RegisterFileDiff
	for i := 0; i < n; i++ {
		if a.regs[i] != b.regs[i] {
			diffs = append(diffs, RegisterFileDiff{Index: i, Left: a.regs[i], Right: b.regs[i]})
		}
	}
	return diffs
}

func (d RegisterFileDiff) String() string {
	return fmt.Sprintf("reg[%d]: %#x != %#x", d.Index, d.Left, d.Right)
}
