// Package format houses the low-level layout of the z/OS dump header record
// (the BLSRPRD mapping). The goal is to keep offset knowledge in one place
// and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

var (
	// PRDSignature is the five-byte eyecatcher at the start of a dump header
	// record: "DR2 H" in EBCDIC.
	//   0x00  0xC4 0xD9 0xF2 0x40 0xC8  ('D' 'R' '2' ' ' 'H')
	PRDSignature = []byte{0xC4, 0xD9, 0xF2, 0x40, 0xC8}
)

const (
	// RecordLength is the fixed logical record length of a dump dataset.
	RecordLength = 4160

	// HeaderRecords is the number of records holding the header block. The
	// eyecatcher opens either the first or the second record; every field
	// offset below is relative to whichever record carries it.
	HeaderRecords = 2

	// HeaderBlockSize is the byte length of the full header block.
	HeaderBlockSize = RecordLength * HeaderRecords
)

// ============================================================================
// BLSRPRD Field Offsets
// ============================================================================
// Offsets are bytes from the eyecatcher. IPCS renders the record as hex
// character data (two digits per byte); halve a digit position to get the
// byte position used here.
const (
	PRDSignatureOffset = 0x000 // 5 bytes, EBCDIC "DR2 H"
	PRDSignatureSize   = 5

	PRDDumpTypeOffset      = 0x024 // 1 byte, dump type code (see PRDType*)
	PRDModuleNameOffset    = 0x040 // [8] EBCDIC chars, dumping module name
	PRDClockOffset         = 0x048 // 8 bytes, STCK value at dump time
	PRDSerialOffset        = 0x051 // 3 bytes, processor serial number
	PRDModelOffset         = 0x054 // 2 bytes, processor model number
	PRDTitleOffset         = 0x058 // [100] EBCDIC chars, dump title
	PRDSysnameOffset       = 0x0CC // [8] EBCDIC chars, dumped system name
	PRDSDRSNOffset         = 0x0E0 // 16 bytes, SDRSN (all zero => complete dump)
	PRDBlockCountOffset    = 0x0F0 // 4 bytes, blocks allocated to the dump
	PRDVersionOffset       = 0x104 // [2] EBCDIC decimal chars, z/OS version
	PRDReleaseOffset       = 0x106 // [2] EBCDIC decimal chars, z/OS release
	PRDOriginalDSNOffset   = 0x1BC // [44] EBCDIC chars, dataset name at dump time
	PRDPrimaryASIDOffset   = 0x1F4 // 2 bytes, PASN at time of error
	PRDSecondaryASIDOffset = 0x1F6 // 2 bytes, SASN at time of error
	PRDHomeASIDOffset      = 0x1F8 // 2 bytes, HASN at time of error
	PRDSDWAASIDOffset      = 0x1FA // 2 bytes, ASID of the SDWA
	PRDSDWAAddrOffset      = 0x1FC // 4 bytes, address of the SDWA
	PRDJobnameOffset       = 0x44C // [8] EBCDIC chars, home jobname
	PRDRemoteSysnameOffset = 0x66C // [8] EBCDIC chars, sysname of a remote dump
)

// derived lengths.
const (
	PRDDumpTypeLen      = 1
	PRDModuleNameLen    = 8
	PRDClockLen         = 8
	PRDSerialLen        = 3
	PRDModelLen         = 2
	PRDTitleLen         = 100
	PRDSysnameLen       = 8
	PRDSDRSNLen         = 16
	PRDBlockCountLen    = 4
	PRDVersionLen       = 2
	PRDReleaseLen       = 2
	PRDOriginalDSNLen   = 44
	PRDASIDLen          = 2
	PRDSDWAAddrLen      = 4
	PRDJobnameLen       = 8
	PRDRemoteSysnameLen = 8
)

// PRDMinSize is the smallest block (from the eyecatcher) the decoder accepts:
// everything through the remote sysname field.
const PRDMinSize = PRDRemoteSysnameOffset + PRDRemoteSysnameLen // 0x674

// Dump type codes stored at PRDDumpTypeOffset.
const (
	PRDTypeSAD     = 0x01 // stand-alone dump
	PRDTypeSVCD    = 0x02 // SVC dump
	PRDTypeTDMPMod = 0x03 // SYSMDUMP, or TDUMP when written by IEAVTDMP
	PRDTypeSLIP    = 0x04 // SLIP dump
)

// PRDTDMPModule is the module name distinguishing a TDUMP from a SYSMDUMP
// when the type code is PRDTypeTDMPMod.
const PRDTDMPModule = "IEAVTDMP"
