// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import "fmt"

// Operands8 lists the operand names encoded by the low three bits of the
// register-to-register and ALU opcodes.
var Operands8 = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// IndirectOperand is the index in Operands8 of the memory operand.
const IndirectOperand = 6

// the eight ALU mnemonics in opcode order. the A operand is explicit for the
// instructions that have a carry form.
var aluMnemonics = [8]string{"ADD A,", "ADC A,", "SUB ", "SBC A,", "AND ", "XOR ", "OR ", "CP "}

// the eight shift/rotate mnemonics of the extended table in opcode order
var shiftMnemonics = [8]string{"RLC", "RRC", "RL", "RR", "SLA", "SRA", "SWAP", "SRL"}

// base instructions outside of the regular 0x40 to 0xbf block. opcodes that
// are not listed here or in the regular block are undefined.
var irregular = []Definition{
	{OpCode: 0x00, Mnemonic: "NOP", Bytes: 1, Cycles: 4, Category: Read},
	{OpCode: 0x01, Mnemonic: "LD BC,d16", Bytes: 3, Cycles: 12, Category: Read},
	{OpCode: 0x02, Mnemonic: "LD (BC),A", Bytes: 1, Cycles: 8, Category: Write},
	{OpCode: 0x03, Mnemonic: "INC BC", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x04, Mnemonic: "INC B", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x05, Mnemonic: "DEC B", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x06, Mnemonic: "LD B,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x07, Mnemonic: "RLCA", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x08, Mnemonic: "LD (a16),SP", Bytes: 3, Cycles: 20, Category: Write},
	{OpCode: 0x09, Mnemonic: "ADD HL,BC", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x0a, Mnemonic: "LD A,(BC)", Bytes: 1, Cycles: 8, Category: Read},
	{OpCode: 0x0b, Mnemonic: "DEC BC", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x0c, Mnemonic: "INC C", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x0d, Mnemonic: "DEC C", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x0e, Mnemonic: "LD C,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x0f, Mnemonic: "RRCA", Bytes: 1, Cycles: 4, Category: Modify},

	{OpCode: 0x10, Mnemonic: "STOP", Bytes: 2, Cycles: 4, Category: Flow},
	{OpCode: 0x11, Mnemonic: "LD DE,d16", Bytes: 3, Cycles: 12, Category: Read},
	{OpCode: 0x12, Mnemonic: "LD (DE),A", Bytes: 1, Cycles: 8, Category: Write},
	{OpCode: 0x13, Mnemonic: "INC DE", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x14, Mnemonic: "INC D", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x15, Mnemonic: "DEC D", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x16, Mnemonic: "LD D,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x17, Mnemonic: "RLA", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x18, Mnemonic: "JR r8", Bytes: 2, Cycles: 12, Category: Flow},
	{OpCode: 0x19, Mnemonic: "ADD HL,DE", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x1a, Mnemonic: "LD A,(DE)", Bytes: 1, Cycles: 8, Category: Read},
	{OpCode: 0x1b, Mnemonic: "DEC DE", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x1c, Mnemonic: "INC E", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x1d, Mnemonic: "DEC E", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x1e, Mnemonic: "LD E,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x1f, Mnemonic: "RRA", Bytes: 1, Cycles: 4, Category: Modify},

	{OpCode: 0x20, Mnemonic: "JR NZ,r8", Bytes: 2, Cycles: 8, Category: Flow},
	{OpCode: 0x21, Mnemonic: "LD HL,d16", Bytes: 3, Cycles: 12, Category: Read},
	{OpCode: 0x22, Mnemonic: "LD (HL+),A", Bytes: 1, Cycles: 8, Category: Write},
	{OpCode: 0x23, Mnemonic: "INC HL", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x24, Mnemonic: "INC H", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x25, Mnemonic: "DEC H", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x26, Mnemonic: "LD H,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x27, Mnemonic: "DAA", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x28, Mnemonic: "JR Z,r8", Bytes: 2, Cycles: 8, Category: Flow},
	{OpCode: 0x29, Mnemonic: "ADD HL,HL", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x2a, Mnemonic: "LD A,(HL+)", Bytes: 1, Cycles: 8, Category: Read},
	{OpCode: 0x2b, Mnemonic: "DEC HL", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x2c, Mnemonic: "INC L", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x2d, Mnemonic: "DEC L", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x2e, Mnemonic: "LD L,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x2f, Mnemonic: "CPL", Bytes: 1, Cycles: 4, Category: Modify},

	{OpCode: 0x30, Mnemonic: "JR NC,r8", Bytes: 2, Cycles: 8, Category: Flow},
	{OpCode: 0x31, Mnemonic: "LD SP,d16", Bytes: 3, Cycles: 12, Category: Read},
	{OpCode: 0x32, Mnemonic: "LD (HL-),A", Bytes: 1, Cycles: 8, Category: Write},
	{OpCode: 0x33, Mnemonic: "INC SP", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x34, Mnemonic: "INC (HL)", Bytes: 1, Cycles: 12, Category: Modify},
	{OpCode: 0x35, Mnemonic: "DEC (HL)", Bytes: 1, Cycles: 12, Category: Modify},
	{OpCode: 0x36, Mnemonic: "LD (HL),d8", Bytes: 2, Cycles: 12, Category: Write},
	{OpCode: 0x37, Mnemonic: "SCF", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x38, Mnemonic: "JR C,r8", Bytes: 2, Cycles: 8, Category: Flow},
	{OpCode: 0x39, Mnemonic: "ADD HL,SP", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x3a, Mnemonic: "LD A,(HL-)", Bytes: 1, Cycles: 8, Category: Read},
	{OpCode: 0x3b, Mnemonic: "DEC SP", Bytes: 1, Cycles: 8, Category: Modify},
	{OpCode: 0x3c, Mnemonic: "INC A", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x3d, Mnemonic: "DEC A", Bytes: 1, Cycles: 4, Category: Modify},
	{OpCode: 0x3e, Mnemonic: "LD A,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0x3f, Mnemonic: "CCF", Bytes: 1, Cycles: 4, Category: Modify},

	{OpCode: 0x76, Mnemonic: "HALT", Bytes: 1, Cycles: 4, Category: Interrupt},

	{OpCode: 0xc0, Mnemonic: "RET NZ", Bytes: 1, Cycles: 8, Category: Subroutine},
	{OpCode: 0xc1, Mnemonic: "POP BC", Bytes: 1, Cycles: 12, Category: Read},
	{OpCode: 0xc2, Mnemonic: "JP NZ,a16", Bytes: 3, Cycles: 12, Category: Flow},
	{OpCode: 0xc3, Mnemonic: "JP a16", Bytes: 3, Cycles: 16, Category: Flow},
	{OpCode: 0xc4, Mnemonic: "CALL NZ,a16", Bytes: 3, Cycles: 12, Category: Subroutine},
	{OpCode: 0xc5, Mnemonic: "PUSH BC", Bytes: 1, Cycles: 16, Category: Write},
	{OpCode: 0xc6, Mnemonic: "ADD A,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xc7, Mnemonic: "RST 00H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xc8, Mnemonic: "RET Z", Bytes: 1, Cycles: 8, Category: Subroutine},
	{OpCode: 0xc9, Mnemonic: "RET", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xca, Mnemonic: "JP Z,a16", Bytes: 3, Cycles: 12, Category: Flow},
	{OpCode: 0xcb, Mnemonic: "PREFIX CB", Bytes: 1, Cycles: 4, Category: Prefix},
	{OpCode: 0xcc, Mnemonic: "CALL Z,a16", Bytes: 3, Cycles: 12, Category: Subroutine},
	{OpCode: 0xcd, Mnemonic: "CALL a16", Bytes: 3, Cycles: 24, Category: Subroutine},
	{OpCode: 0xce, Mnemonic: "ADC A,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xcf, Mnemonic: "RST 08H", Bytes: 1, Cycles: 16, Category: Subroutine},

	{OpCode: 0xd0, Mnemonic: "RET NC", Bytes: 1, Cycles: 8, Category: Subroutine},
	{OpCode: 0xd1, Mnemonic: "POP DE", Bytes: 1, Cycles: 12, Category: Read},
	{OpCode: 0xd2, Mnemonic: "JP NC,a16", Bytes: 3, Cycles: 12, Category: Flow},
	{OpCode: 0xd3, Mnemonic: "TRAP", Bytes: 1, Cycles: 4, Category: Trap},
	{OpCode: 0xd4, Mnemonic: "CALL NC,a16", Bytes: 3, Cycles: 12, Category: Subroutine},
	{OpCode: 0xd5, Mnemonic: "PUSH DE", Bytes: 1, Cycles: 16, Category: Write},
	{OpCode: 0xd6, Mnemonic: "SUB d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xd7, Mnemonic: "RST 10H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xd8, Mnemonic: "RET C", Bytes: 1, Cycles: 8, Category: Subroutine},
	{OpCode: 0xd9, Mnemonic: "RETI", Bytes: 1, Cycles: 16, Category: Interrupt},
	{OpCode: 0xda, Mnemonic: "JP C,a16", Bytes: 3, Cycles: 12, Category: Flow},
	{OpCode: 0xdc, Mnemonic: "CALL C,a16", Bytes: 3, Cycles: 12, Category: Subroutine},
	{OpCode: 0xde, Mnemonic: "SBC A,d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xdf, Mnemonic: "RST 18H", Bytes: 1, Cycles: 16, Category: Subroutine},

	{OpCode: 0xe0, Mnemonic: "LDH (a8),A", Bytes: 2, Cycles: 12, Category: Write},
	{OpCode: 0xe1, Mnemonic: "POP HL", Bytes: 1, Cycles: 12, Category: Read},
	{OpCode: 0xe2, Mnemonic: "LD (C),A", Bytes: 1, Cycles: 8, Category: Write},
	{OpCode: 0xe5, Mnemonic: "PUSH HL", Bytes: 1, Cycles: 16, Category: Write},
	{OpCode: 0xe6, Mnemonic: "AND d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xe7, Mnemonic: "RST 20H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xe8, Mnemonic: "ADD SP,r8", Bytes: 2, Cycles: 16, Category: Modify},
	{OpCode: 0xe9, Mnemonic: "JP HL", Bytes: 1, Cycles: 4, Category: Flow},
	{OpCode: 0xea, Mnemonic: "LD (a16),A", Bytes: 3, Cycles: 16, Category: Write},
	{OpCode: 0xee, Mnemonic: "XOR d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xef, Mnemonic: "RST 28H", Bytes: 1, Cycles: 16, Category: Subroutine},

	{OpCode: 0xf0, Mnemonic: "LDH A,(a8)", Bytes: 2, Cycles: 12, Category: Read},
	{OpCode: 0xf1, Mnemonic: "POP AF", Bytes: 1, Cycles: 12, Category: Read},
	{OpCode: 0xf2, Mnemonic: "LD A,(C)", Bytes: 1, Cycles: 8, Category: Read},
	{OpCode: 0xf3, Mnemonic: "DI", Bytes: 1, Cycles: 4, Category: Interrupt},
	{OpCode: 0xf5, Mnemonic: "PUSH AF", Bytes: 1, Cycles: 16, Category: Write},
	{OpCode: 0xf6, Mnemonic: "OR d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xf7, Mnemonic: "RST 30H", Bytes: 1, Cycles: 16, Category: Subroutine},
	{OpCode: 0xf8, Mnemonic: "LD HL,SP+r8", Bytes: 2, Cycles: 12, Category: Read},
	{OpCode: 0xf9, Mnemonic: "LD SP,HL", Bytes: 1, Cycles: 8, Category: Read},
	{OpCode: 0xfa, Mnemonic: "LD A,(a16)", Bytes: 3, Cycles: 16, Category: Read},
	{OpCode: 0xfb, Mnemonic: "EI", Bytes: 1, Cycles: 4, Category: Interrupt},
	{OpCode: 0xfe, Mnemonic: "CP d8", Bytes: 2, Cycles: 8, Category: Read},
	{OpCode: 0xff, Mnemonic: "RST 38H", Bytes: 1, Cycles: 16, Category: Subroutine},
}

func buildBase(t *Table) {
	// undefined opcodes are a single byte so that a linear disassembly can
	// step over them
	for i := range t {
		t[i] = Definition{OpCode: uint8(i), Mnemonic: "??", Bytes: 1, Category: Undefined}
	}

	// 0x40 to 0x7f. load register to register
	for op := 0x40; op <= 0x7f; op++ {
		dst := (op >> 3) & 0x07
		src := op & 0x07
		d := Definition{
			OpCode:   uint8(op),
			Mnemonic: fmt.Sprintf("LD %s,%s", Operands8[dst], Operands8[src]),
			Bytes:    1,
			Cycles:   4,
			Category: Read,
		}
		if src == IndirectOperand || dst == IndirectOperand {
			d.Cycles = 8
		}
		if dst == IndirectOperand {
			d.Category = Write
		}
		t[op] = d
	}

	// 0x80 to 0xbf. arithmetic and logic with the accumulator
	for op := 0x80; op <= 0xbf; op++ {
		src := op & 0x07
		d := Definition{
			OpCode:   uint8(op),
			Mnemonic: aluMnemonics[(op>>3)&0x07] + Operands8[src],
			Bytes:    1,
			Cycles:   4,
			Category: Read,
		}
		if src == IndirectOperand {
			d.Cycles = 8
		}
		t[op] = d
	}

	// irregular entries overwrite the regular block where necessary (HALT
	// replaces LD (HL),(HL))
	for _, d := range irregular {
		t[d.OpCode] = d
	}
}

func buildExtended(t *Table) {
	for op := 0; op <= 0xff; op++ {
		reg := op & 0x07
		bit := (op >> 3) & 0x07

		d := Definition{
			OpCode:   uint8(op),
			Prefixed: true,
			Bytes:    2,
			Cycles:   8,
			Category: Modify,
		}

		switch op >> 6 {
		case 0:
			d.Mnemonic = fmt.Sprintf("%s %s", shiftMnemonics[bit], Operands8[reg])
		case 1:
			d.Mnemonic = fmt.Sprintf("BIT %d,%s", bit, Operands8[reg])
			d.Category = Read
		case 2:
			d.Mnemonic = fmt.Sprintf("RES %d,%s", bit, Operands8[reg])
		case 3:
			d.Mnemonic = fmt.Sprintf("SET %d,%s", bit, Operands8[reg])
		}

		if reg == IndirectOperand {
			if d.Category == Read {
				d.Cycles = 12
			} else {
				d.Cycles = 16
			}
		}

		t[op] = d
	}
}
