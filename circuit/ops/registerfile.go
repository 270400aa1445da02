package ops

import (
	"fmt"

	"github.com/sarchlab/vsrtl/circuit"
)

// defaultReverseStackSize mirrors circuit's own default depth for a
// plain register's undo history (op_reg.h's default), applied here to
// the register file's per-entry array snapshots instead of a scalar.
const defaultReverseStackSize = 100

// RegisterFile is an n-entry, nOperands-read-port register bank driven
// by a single instruction word. It is a register-kind component, not a
// combinational one: its operand outputs are seeded from the stored
// register array at the start of every settle round, and a pending
// write (writeEnable/writeRegister/writeData) commits only at the
// clock edge, exactly like a single-word circuit.Register — just with
// nOperands outputs and an n-entry array in place of one scalar. A
// same-cycle combinational write-before-read bypass would instead
// create an unbreakable cycle wherever writeData is itself driven
// from a combinational function of an operand output (e.g. an ALU fed
// by operand0), since the component-level propagation gate waits for
// every input, writeData included, before any output is computed.
// Grounded on original_source/core/vsrtl_component.cpp's
// propagateComponent, which treats any isRegister() component as a
// propagation source regardless of its internal state's shape, and on
// original_source/core/RISC-V/riscv_registerfile.h, itself a
// REGISTER_COMPONENT.
type RegisterFile struct {
	*circuit.Component

	regs        []uint64
	regsReverse [][]uint64
	reverseMax  int
	width       uint
	decode      circuit.BitFieldDecoder
}

// NewRegisterFile creates a register file of regCount entries, each
// width bits wide, with nOperands read ports. decode splits the
// instruction port into bit-fields (LSB-first, per
// circuit.NewBitFieldDecoder); fieldIndices[i] names which decoded
// field supplies the register index read by operand port i. The write
// port's register index comes directly from the writeRegister port,
// not from the instruction decoder — grounded on
// original_source/core/RISC-V/riscv_registerfile.h::RISCV_RegisterFile.
func NewRegisterFile(parent *circuit.Component, name string, regCount int, width uint,
	decode circuit.BitFieldDecoder, fieldIndices []int) *RegisterFile {
	c := circuit.NewComponent(parent, name)
	rf := &RegisterFile{
		Component:  c,
		regs:       make([]uint64, regCount),
		reverseMax: defaultReverseStackSize,
		width:      width,
		decode:     decode,
	}

	instruction := c.AddInputPort("instruction", width)
	writeRegister := c.AddInputPort("writeRegister", width)
	writeEnable := c.AddInputPort("writeEnable", 1)
	writeData := c.AddInputPort("writeData", width)

	outs := make([]*circuit.Port, len(fieldIndices))
	for opIdx := range fieldIndices {
		outs[opIdx] = c.AddOutputPort(fmt.Sprintf("operand%d", opIdx), width)
	}

	c.SetRegisterSource(
		func() map[string]uint64 {
			fields := decode(instruction.Unsigned())
			values := make(map[string]uint64, len(outs))
			for opIdx, fieldIdx := range fieldIndices {
				regNo := int(fields[fieldIdx])
				var v uint64
				if regNo >= 0 && regNo < len(rf.regs) {
					v = rf.regs[regNo]
				}
				values[outs[opIdx].Name()] = v
			}
			return values
		},
		func() {
			rf.pushReverse()
			if writeEnable.Unsigned() != 0 {
				idx := writeRegister.Unsigned()
				if int(idx) < len(rf.regs) {
					rf.regs[idx] = writeData.Unsigned()
				}
			}
		},
		func() {
			for i := range rf.regs {
				rf.regs[i] = 0
			}
			rf.regsReverse = rf.regsReverse[:0]
		},
		func() error {
			if len(rf.regsReverse) == 0 {
				return &circuit.Error{Kind: circuit.ReverseExhausted, Subject: name, Detail: "no saved register-file state to reverse to"}
			}
			last := len(rf.regsReverse) - 1
			rf.regs = rf.regsReverse[last]
			rf.regsReverse = rf.regsReverse[:last]
			return nil
		},
	)

	return rf
}

// pushReverse snapshots the register array before a write commits, so
// Design.Reverse can restore it. Mirrors circuit.Component's own
// pushReverse for a scalar register, bounded the same way.
func (rf *RegisterFile) pushReverse() {
	if rf.reverseMax == 0 {
		return
	}
	snapshot := append([]uint64(nil), rf.regs...)
	rf.regsReverse = append(rf.regsReverse, snapshot)
	if rf.reverseMax > 0 && len(rf.regsReverse) > rf.reverseMax {
		rf.regsReverse = rf.regsReverse[1:]
	}
}

// SetReverseStackSize bounds the number of clock edges Reverse can
// undo for this register file. Shrinking the bound below the current
// depth drops the oldest entries. A negative n means unbounded.
func (rf *RegisterFile) SetReverseStackSize(n int) {
	rf.reverseMax = n
	if n >= 0 && len(rf.regsReverse) > n {
		rf.regsReverse = rf.regsReverse[len(rf.regsReverse)-n:]
	}
}

// Value returns the current value held in register index.
func (rf *RegisterFile) Value(index int) uint64 {
	if index < 0 || index >= len(rf.regs) {
		return 0
	}
	return rf.regs[index]
}

// Reset zeroes every register and clears the reverse history. Design
// already does this automatically (RegisterFile is register-kind), so
// this is only needed for manual use outside a Design's lifecycle.
func (rf *RegisterFile) Reset() {
	for i := range rf.regs {
		rf.regs[i] = 0
	}
	rf.regsReverse = rf.regsReverse[:0]
}
