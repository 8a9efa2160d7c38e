package cpu

// instruction is one entry of the static opcode decode table: the
// addressing mode to resolve, the instruction length and base cycle
// count, whether a page-crossing addressing mode earns a bonus cycle,
// and the function that performs the work. Dispatch is a plain array
// lookup by opcode byte — no reflection, no string-keyed lookup.
type instruction struct {
	name      string
	mode      uint8
	bytes     uint8
	cycles    uint8
	pageCycle bool
	exec      func(c *CPU, mode uint8)
}

var opcodeTable [256]instruction

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = instruction{name: "KIL", bytes: 1, cycles: 2, exec: unimplemented}
	}
	for _, d := range opcodeDefs {
		opcodeTable[d.op] = instruction{
			name:      d.name,
			mode:      d.mode,
			bytes:     d.bytes,
			cycles:    d.cycles,
			pageCycle: d.pageCycle,
			exec:      d.exec,
		}
	}
}

type opcodeDef struct {
	op        uint8
	name      string
	mode      uint8
	bytes     uint8
	cycles    uint8
	pageCycle bool
	exec      func(c *CPU, mode uint8)
}

// opcodeDefs lists every opcode byte this CPU decodes: the full
// documented 6502 instruction set plus the undocumented opcodes NES
// software and test ROMs commonly rely on (LAX, SAX, DCP, ISC and the
// illegal NOP family). Opcode bytes with no entry here fall back to
// the KIL/unimplemented default installed in init.
var opcodeDefs = []opcodeDef{
	// ADC
	{0x69, "ADC", Immediate, 2, 2, false, opADC},
	{0x65, "ADC", ZeroPage, 2, 3, false, opADC},
	{0x75, "ADC", ZeroPageX, 2, 4, false, opADC},
	{0x6D, "ADC", Absolute, 3, 4, false, opADC},
	{0x7D, "ADC", AbsoluteX, 3, 4, true, opADC},
	{0x79, "ADC", AbsoluteY, 3, 4, true, opADC},
	{0x61, "ADC", IndirectX, 2, 6, false, opADC},
	{0x71, "ADC", IndirectY, 2, 5, true, opADC},

	// AND
	{0x29, "AND", Immediate, 2, 2, false, opAND},
	{0x25, "AND", ZeroPage, 2, 3, false, opAND},
	{0x35, "AND", ZeroPageX, 2, 4, false, opAND},
	{0x2D, "AND", Absolute, 3, 4, false, opAND},
	{0x3D, "AND", AbsoluteX, 3, 4, true, opAND},
	{0x39, "AND", AbsoluteY, 3, 4, true, opAND},
	{0x21, "AND", IndirectX, 2, 6, false, opAND},
	{0x31, "AND", IndirectY, 2, 5, true, opAND},

	// ASL
	{0x0A, "ASL", Accumulator, 1, 2, false, opASL},
	{0x06, "ASL", ZeroPage, 2, 5, false, opASL},
	{0x16, "ASL", ZeroPageX, 2, 6, false, opASL},
	{0x0E, "ASL", Absolute, 3, 6, false, opASL},
	{0x1E, "ASL", AbsoluteX, 3, 7, false, opASL},

	// branches
	{0x90, "BCC", Relative, 2, 2, false, opBCC},
	{0xB0, "BCS", Relative, 2, 2, false, opBCS},
	{0xF0, "BEQ", Relative, 2, 2, false, opBEQ},
	{0x30, "BMI", Relative, 2, 2, false, opBMI},
	{0xD0, "BNE", Relative, 2, 2, false, opBNE},
	{0x10, "BPL", Relative, 2, 2, false, opBPL},
	{0x50, "BVC", Relative, 2, 2, false, opBVC},
	{0x70, "BVS", Relative, 2, 2, false, opBVS},

	// BIT
	{0x24, "BIT", ZeroPage, 2, 3, false, opBIT},
	{0x2C, "BIT", Absolute, 3, 4, false, opBIT},

	// BRK
	{0x00, "BRK", Implicit, 1, 7, false, opBRK},

	// clear/set flags
	{0x18, "CLC", Implicit, 1, 2, false, opCLC},
	{0x38, "SEC", Implicit, 1, 2, false, opSEC},
	{0x58, "CLI", Implicit, 1, 2, false, opCLI},
	{0x78, "SEI", Implicit, 1, 2, false, opSEI},
	{0xB8, "CLV", Implicit, 1, 2, false, opCLV},
	{0xD8, "CLD", Implicit, 1, 2, false, opCLD},
	{0xF8, "SED", Implicit, 1, 2, false, opSED},

	// CMP
	{0xC9, "CMP", Immediate, 2, 2, false, opCMP},
	{0xC5, "CMP", ZeroPage, 2, 3, false, opCMP},
	{0xD5, "CMP", ZeroPageX, 2, 4, false, opCMP},
	{0xCD, "CMP", Absolute, 3, 4, false, opCMP},
	{0xDD, "CMP", AbsoluteX, 3, 4, true, opCMP},
	{0xD9, "CMP", AbsoluteY, 3, 4, true, opCMP},
	{0xC1, "CMP", IndirectX, 2, 6, false, opCMP},
	{0xD1, "CMP", IndirectY, 2, 5, true, opCMP},

	// CPX / CPY
	{0xE0, "CPX", Immediate, 2, 2, false, opCPX},
	{0xE4, "CPX", ZeroPage, 2, 3, false, opCPX},
	{0xEC, "CPX", Absolute, 3, 4, false, opCPX},
	{0xC0, "CPY", Immediate, 2, 2, false, opCPY},
	{0xC4, "CPY", ZeroPage, 2, 3, false, opCPY},
	{0xCC, "CPY", Absolute, 3, 4, false, opCPY},

	// DEC / DEX / DEY
	{0xC6, "DEC", ZeroPage, 2, 5, false, opDEC},
	{0xD6, "DEC", ZeroPageX, 2, 6, false, opDEC},
	{0xCE, "DEC", Absolute, 3, 6, false, opDEC},
	{0xDE, "DEC", AbsoluteX, 3, 7, false, opDEC},
	{0xCA, "DEX", Implicit, 1, 2, false, opDEX},
	{0x88, "DEY", Implicit, 1, 2, false, opDEY},

	// EOR
	{0x49, "EOR", Immediate, 2, 2, false, opEOR},
	{0x45, "EOR", ZeroPage, 2, 3, false, opEOR},
	{0x55, "EOR", ZeroPageX, 2, 4, false, opEOR},
	{0x4D, "EOR", Absolute, 3, 4, false, opEOR},
	{0x5D, "EOR", AbsoluteX, 3, 4, true, opEOR},
	{0x59, "EOR", AbsoluteY, 3, 4, true, opEOR},
	{0x41, "EOR", IndirectX, 2, 6, false, opEOR},
	{0x51, "EOR", IndirectY, 2, 5, true, opEOR},

	// INC / INX / INY
	{0xE6, "INC", ZeroPage, 2, 5, false, opINC},
	{0xF6, "INC", ZeroPageX, 2, 6, false, opINC},
	{0xEE, "INC", Absolute, 3, 6, false, opINC},
	{0xFE, "INC", AbsoluteX, 3, 7, false, opINC},
	{0xE8, "INX", Implicit, 1, 2, false, opINX},
	{0xC8, "INY", Implicit, 1, 2, false, opINY},

	// JMP / JSR / RTS / RTI
	{0x4C, "JMP", Absolute, 3, 3, false, opJMP},
	{0x6C, "JMP", Indirect, 3, 5, false, opJMP},
	{0x20, "JSR", Absolute, 3, 6, false, opJSR},
	{0x60, "RTS", Implicit, 1, 6, false, opRTS},
	{0x40, "RTI", Implicit, 1, 6, false, opRTI},

	// LDA / LDX / LDY
	{0xA9, "LDA", Immediate, 2, 2, false, opLDA},
	{0xA5, "LDA", ZeroPage, 2, 3, false, opLDA},
	{0xB5, "LDA", ZeroPageX, 2, 4, false, opLDA},
	{0xAD, "LDA", Absolute, 3, 4, false, opLDA},
	{0xBD, "LDA", AbsoluteX, 3, 4, true, opLDA},
	{0xB9, "LDA", AbsoluteY, 3, 4, true, opLDA},
	{0xA1, "LDA", IndirectX, 2, 6, false, opLDA},
	{0xB1, "LDA", IndirectY, 2, 5, true, opLDA},

	{0xA2, "LDX", Immediate, 2, 2, false, opLDX},
	{0xA6, "LDX", ZeroPage, 2, 3, false, opLDX},
	{0xB6, "LDX", ZeroPageY, 2, 4, false, opLDX},
	{0xAE, "LDX", Absolute, 3, 4, false, opLDX},
	{0xBE, "LDX", AbsoluteY, 3, 4, true, opLDX},

	{0xA0, "LDY", Immediate, 2, 2, false, opLDY},
	{0xA4, "LDY", ZeroPage, 2, 3, false, opLDY},
	{0xB4, "LDY", ZeroPageX, 2, 4, false, opLDY},
	{0xAC, "LDY", Absolute, 3, 4, false, opLDY},
	{0xBC, "LDY", AbsoluteX, 3, 4, true, opLDY},

	// LSR
	{0x4A, "LSR", Accumulator, 1, 2, false, opLSR},
	{0x46, "LSR", ZeroPage, 2, 5, false, opLSR},
	{0x56, "LSR", ZeroPageX, 2, 6, false, opLSR},
	{0x4E, "LSR", Absolute, 3, 6, false, opLSR},
	{0x5E, "LSR", AbsoluteX, 3, 7, false, opLSR},

	// NOP
	{0xEA, "NOP", Implicit, 1, 2, false, opNOP},

	// ORA
	{0x09, "ORA", Immediate, 2, 2, false, opORA},
	{0x05, "ORA", ZeroPage, 2, 3, false, opORA},
	{0x15, "ORA", ZeroPageX, 2, 4, false, opORA},
	{0x0D, "ORA", Absolute, 3, 4, false, opORA},
	{0x1D, "ORA", AbsoluteX, 3, 4, true, opORA},
	{0x19, "ORA", AbsoluteY, 3, 4, true, opORA},
	{0x01, "ORA", IndirectX, 2, 6, false, opORA},
	{0x11, "ORA", IndirectY, 2, 5, true, opORA},

	// stack
	{0x48, "PHA", Implicit, 1, 3, false, opPHA},
	{0x08, "PHP", Implicit, 1, 3, false, opPHP},
	{0x68, "PLA", Implicit, 1, 4, false, opPLA},
	{0x28, "PLP", Implicit, 1, 4, false, opPLP},

	// ROL / ROR
	{0x2A, "ROL", Accumulator, 1, 2, false, opROL},
	{0x26, "ROL", ZeroPage, 2, 5, false, opROL},
	{0x36, "ROL", ZeroPageX, 2, 6, false, opROL},
	{0x2E, "ROL", Absolute, 3, 6, false, opROL},
	{0x3E, "ROL", AbsoluteX, 3, 7, false, opROL},

	{0x6A, "ROR", Accumulator, 1, 2, false, opROR},
	{0x66, "ROR", ZeroPage, 2, 5, false, opROR},
	{0x76, "ROR", ZeroPageX, 2, 6, false, opROR},
	{0x6E, "ROR", Absolute, 3, 6, false, opROR},
	{0x7E, "ROR", AbsoluteX, 3, 7, false, opROR},

	// SBC (0xEB is the undocumented duplicate encoding)
	{0xE9, "SBC", Immediate, 2, 2, false, opSBC},
	{0xEB, "SBC", Immediate, 2, 2, false, opSBC},
	{0xE5, "SBC", ZeroPage, 2, 3, false, opSBC},
	{0xF5, "SBC", ZeroPageX, 2, 4, false, opSBC},
	{0xED, "SBC", Absolute, 3, 4, false, opSBC},
	{0xFD, "SBC", AbsoluteX, 3, 4, true, opSBC},
	{0xF9, "SBC", AbsoluteY, 3, 4, true, opSBC},
	{0xE1, "SBC", IndirectX, 2, 6, false, opSBC},
	{0xF1, "SBC", IndirectY, 2, 5, true, opSBC},

	// STA / STX / STY
	{0x85, "STA", ZeroPage, 2, 3, false, opSTA},
	{0x95, "STA", ZeroPageX, 2, 4, false, opSTA},
	{0x8D, "STA", Absolute, 3, 4, false, opSTA},
	{0x9D, "STA", AbsoluteX, 3, 5, false, opSTA},
	{0x99, "STA", AbsoluteY, 3, 5, false, opSTA},
	{0x81, "STA", IndirectX, 2, 6, false, opSTA},
	{0x91, "STA", IndirectY, 2, 6, false, opSTA},

	{0x86, "STX", ZeroPage, 2, 3, false, opSTX},
	{0x96, "STX", ZeroPageY, 2, 4, false, opSTX},
	{0x8E, "STX", Absolute, 3, 4, false, opSTX},

	{0x84, "STY", ZeroPage, 2, 3, false, opSTY},
	{0x94, "STY", ZeroPageX, 2, 4, false, opSTY},
	{0x8C, "STY", Absolute, 3, 4, false, opSTY},

	// register transfers
	{0xAA, "TAX", Implicit, 1, 2, false, opTAX},
	{0xA8, "TAY", Implicit, 1, 2, false, opTAY},
	{0xBA, "TSX", Implicit, 1, 2, false, opTSX},
	{0x8A, "TXA", Implicit, 1, 2, false, opTXA},
	{0x9A, "TXS", Implicit, 1, 2, false, opTXS},
	{0x98, "TYA", Implicit, 1, 2, false, opTYA},

	// --- undocumented opcodes ---

	// LAX
	{0xA7, "LAX", ZeroPage, 2, 3, false, opLAX},
	{0xB7, "LAX", ZeroPageY, 2, 4, false, opLAX},
	{0xAF, "LAX", Absolute, 3, 4, false, opLAX},
	{0xBF, "LAX", AbsoluteY, 3, 4, true, opLAX},
	{0xA3, "LAX", IndirectX, 2, 6, false, opLAX},
	{0xB3, "LAX", IndirectY, 2, 5, true, opLAX},

	// SAX. The $97 encoding is documented by hardware as "zero page,X"
	// in its instruction-length/cycle class but actually indexes by Y
	// (SAX stores A&X, and indexing the store address by X as well
	// would make the opcode redundant with $87) — resolved here using
	// ZeroPageY directly.
	{0x87, "SAX", ZeroPage, 2, 3, false, opSAX},
	{0x97, "SAX", ZeroPageY, 2, 4, false, opSAX},
	{0x8F, "SAX", Absolute, 3, 4, false, opSAX},
	{0x83, "SAX", IndirectX, 2, 6, false, opSAX},

	// DCP (DCM)
	{0xC7, "DCP", ZeroPage, 2, 5, false, opDCP},
	{0xD7, "DCP", ZeroPageX, 2, 6, false, opDCP},
	{0xCF, "DCP", Absolute, 3, 6, false, opDCP},
	{0xDF, "DCP", AbsoluteX, 3, 7, false, opDCP},
	{0xDB, "DCP", AbsoluteY, 3, 7, false, opDCP},
	{0xC3, "DCP", IndirectX, 2, 8, false, opDCP},
	{0xD3, "DCP", IndirectY, 2, 8, false, opDCP},

	// ISC (ISB)
	{0xE7, "ISC", ZeroPage, 2, 5, false, opISC},
	{0xF7, "ISC", ZeroPageX, 2, 6, false, opISC},
	{0xEF, "ISC", Absolute, 3, 6, false, opISC},
	{0xFF, "ISC", AbsoluteX, 3, 7, false, opISC},
	{0xFB, "ISC", AbsoluteY, 3, 7, false, opISC},
	{0xE3, "ISC", IndirectX, 2, 8, false, opISC},
	{0xF3, "ISC", IndirectY, 2, 8, false, opISC},

	// unofficial NOPs: implicit (1-byte)
	{0x1A, "NOP", Implicit, 1, 2, false, opNOP},
	{0x3A, "NOP", Implicit, 1, 2, false, opNOP},
	{0x5A, "NOP", Implicit, 1, 2, false, opNOP},
	{0x7A, "NOP", Implicit, 1, 2, false, opNOP},
	{0xDA, "NOP", Implicit, 1, 2, false, opNOP},
	{0xFA, "NOP", Implicit, 1, 2, false, opNOP},

	// unofficial NOPs: immediate operand, discarded ("SKB")
	{0x80, "NOP", Immediate, 2, 2, false, opNOP},
	{0x82, "NOP", Immediate, 2, 2, false, opNOP},
	{0x89, "NOP", Immediate, 2, 2, false, opNOP},
	{0xC2, "NOP", Immediate, 2, 2, false, opNOP},
	{0xE2, "NOP", Immediate, 2, 2, false, opNOP},

	// unofficial NOPs: zero page
	{0x04, "NOP", ZeroPage, 2, 3, false, opNOP},
	{0x44, "NOP", ZeroPage, 2, 3, false, opNOP},
	{0x64, "NOP", ZeroPage, 2, 3, false, opNOP},

	// unofficial NOPs: zero page,X
	{0x14, "NOP", ZeroPageX, 2, 4, false, opNOP},
	{0x34, "NOP", ZeroPageX, 2, 4, false, opNOP},
	{0x54, "NOP", ZeroPageX, 2, 4, false, opNOP},
	{0x74, "NOP", ZeroPageX, 2, 4, false, opNOP},
	{0xD4, "NOP", ZeroPageX, 2, 4, false, opNOP},
	{0xF4, "NOP", ZeroPageX, 2, 4, false, opNOP},

	// unofficial NOPs: absolute / absolute,X ("SKW")
	{0x0C, "NOP", Absolute, 3, 4, false, opNOP},
	{0x1C, "NOP", AbsoluteX, 3, 4, true, opNOP},
	{0x3C, "NOP", AbsoluteX, 3, 4, true, opNOP},
	{0x5C, "NOP", AbsoluteX, 3, 4, true, opNOP},
	{0x7C, "NOP", AbsoluteX, 3, 4, true, opNOP},
	{0xDC, "NOP", AbsoluteX, 3, 4, true, opNOP},
	{0xFC, "NOP", AbsoluteX, 3, 4, true, opNOP},
}
