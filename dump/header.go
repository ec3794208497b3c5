// Package dump decodes the header record of z/OS dump datasets: what kind
// of dump it is, which system took it and when, and — for dumps taken by a
// live system — which address spaces were involved. Decoding works on raw
// record bytes, so it needs no host services beyond a record read.
package dump

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"

	"github.com/zoskit/ipcskit/hex"
	"github.com/zoskit/ipcskit/internal/buf"
	"github.com/zoskit/ipcskit/internal/format"
	"github.com/zoskit/ipcskit/pkg/types"
)

// Type classifies a dump by how it was taken.
type Type int

const (
	TypeUnknown Type = iota
	TypeSAD          // stand-alone dump
	TypeSVCD         // SVC dump
	TypeTDMP         // transaction dump
	TypeSYSM         // SYSMDUMP
	TypeSLIP         // SLIP-initiated dump
)

func (t Type) String() string {
	switch t {
	case TypeSAD:
		return "SAD"
	case TypeSVCD:
		return "SVCD"
	case TypeTDMP:
		return "TDMP"
	case TypeSYSM:
		return "SYSM"
	case TypeSLIP:
		return "SLIP"
	default:
		return "UNKNOWN"
	}
}

// MarshalJSON renders the type as its name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// Header is the decoded dump header record.
type Header struct {
	Type        Type      `json:"dump_type"`
	Sysname     string    `json:"sysname"`
	Title       string    `json:"title"`
	OriginalDSN string    `json:"original_dump_dsn"`
	Time        time.Time `json:"time"`
	Version     int       `json:"version"`
	Release     int       `json:"release"`
	// SDRSN is the dump range suppression reason; all zero means no part of
	// the dump was suppressed.
	SDRSN        hex.Value `json:"sdrsn"`
	Complete     bool      `json:"complete_dump"`
	SerialNumber string    `json:"processor_serial_number"`
	ModelNumber  string    `json:"processor_model_number"`
	// Request is present for every dump type except stand-alone dumps,
	// which have no requesting address space to record.
	Request *RequestInfo `json:"request,omitempty"`
}

// RequestInfo carries the header fields that exist only when a running
// system wrote the dump: the requesting job and address spaces, the SDWA
// location, and where the request came from.
type RequestInfo struct {
	Jobname     string    `json:"home_jobname"`
	Primary     hex.Value `json:"primary_asid"`
	Secondary   hex.Value `json:"secondary_asid"`
	Home        hex.Value `json:"home_asid"`
	SDWAASID    hex.Value `json:"sdwa_asid"`
	SDWAAddress hex.Value `json:"sdwa_address"`
	Blocks      int64     `json:"blocks_allocated"`
	// RemoteSysname names the system that asked for the dump. Remote is set
	// only when that name is present and differs from the dumped system.
	RemoteSysname string `json:"remote_sysname,omitempty"`
	Remote        bool   `json:"remote_dump"`
}

// LocalDate formats the dump date the way IPCS reports it, mm/dd/yy.
func (h *Header) LocalDate() string { return h.Time.Format("01/02/06") }

// LocalTime formats the dump wall-clock time with microseconds.
func (h *Header) LocalTime() string { return h.Time.Format("15:04:05.000000") }

// IsHeader reports whether raw plausibly holds a dump header record, in
// either the first or the second record position.
func IsHeader(raw []byte) bool {
	_, err := format.FindBase(raw)
	return err == nil
}

// ReadHeader reads the header block from src and decodes it, interpreting
// character fields through cp.
func ReadHeader(src RecordSource, cp *charmap.Charmap) (*Header, error) {
	raw, err := src.ReadRecords(0, format.HeaderRecords)
	if err != nil {
		return nil, fmt.Errorf("dump: read header block: %w", err)
	}
	return DecodeHeader(raw, cp)
}

// DecodeHeader decodes a dump header from raw bytes as read from the front
// of a dump dataset. Character fields decode through cp. Malformed or short
// input fails with ErrNotHeader; nothing is partially decoded.
func DecodeHeader(raw []byte, cp *charmap.Charmap) (*Header, error) {
	base, err := format.FindBase(raw)
	if err != nil {
		return nil, notHeader(err)
	}
	b := raw[base:]

	h := &Header{
		Sysname:      format.CharField(b, format.PRDSysnameOffset, format.PRDSysnameLen, cp),
		Title:        format.CharField(b, format.PRDTitleOffset, format.PRDTitleLen, cp),
		OriginalDSN:  format.CharField(b, format.PRDOriginalDSNOffset, format.PRDOriginalDSNLen, cp),
		Time:         format.STCKToTime(buf.U64BE(b[format.PRDClockOffset:])),
		SDRSN:        hexField(b, format.PRDSDRSNOffset, format.PRDSDRSNLen),
		SerialNumber: hexField(b, format.PRDSerialOffset, format.PRDSerialLen).String(),
		ModelNumber:  hexField(b, format.PRDModelOffset, format.PRDModelLen).String(),
	}
	h.Type = decodeType(b, cp)
	h.Complete = h.SDRSN.Equal(hex.Value{})

	if h.Version, err = format.DecimalField(b, format.PRDVersionOffset, format.PRDVersionLen, cp); err != nil {
		return nil, notHeader(fmt.Errorf("version field: %v", err))
	}
	if h.Release, err = format.DecimalField(b, format.PRDReleaseOffset, format.PRDReleaseLen, cp); err != nil {
		return nil, notHeader(fmt.Errorf("release field: %v", err))
	}

	// A stand-alone dump is taken from outside the system; none of the
	// requesting-address-space fields exist for it.
	if h.Type != TypeSAD {
		r := &RequestInfo{
			Jobname:       format.CharField(b, format.PRDJobnameOffset, format.PRDJobnameLen, cp),
			Primary:       hexField(b, format.PRDPrimaryASIDOffset, format.PRDASIDLen),
			Secondary:     hexField(b, format.PRDSecondaryASIDOffset, format.PRDASIDLen),
			Home:          hexField(b, format.PRDHomeASIDOffset, format.PRDASIDLen),
			SDWAASID:      hexField(b, format.PRDSDWAASIDOffset, format.PRDASIDLen),
			SDWAAddress:   hexField(b, format.PRDSDWAAddrOffset, format.PRDSDWAAddrLen),
			Blocks:        int64(buf.U32BE(b[format.PRDBlockCountOffset:])),
			RemoteSysname: format.CharField(b, format.PRDRemoteSysnameOffset, format.PRDRemoteSysnameLen, cp),
		}
		r.Remote = r.RemoteSysname != "" && r.RemoteSysname != h.Sysname
		h.Request = r
	}
	return h, nil
}

// decodeType reads the dump type code. Code 3 is a SYSMDUMP unless the
// dumping module says IEAVTDMP, which marks a transaction dump.
func decodeType(b []byte, cp *charmap.Charmap) Type {
	switch b[format.PRDDumpTypeOffset] {
	case format.PRDTypeSAD:
		return TypeSAD
	case format.PRDTypeSVCD:
		return TypeSVCD
	case format.PRDTypeTDMPMod:
		mod := format.CharField(b, format.PRDModuleNameOffset, format.PRDModuleNameLen, cp)
		if strings.ToUpper(mod) == format.PRDTDMPModule {
			return TypeTDMP
		}
		return TypeSYSM
	case format.PRDTypeSLIP:
		return TypeSLIP
	default:
		return TypeUnknown
	}
}

func hexField(b []byte, off, n int) hex.Value {
	return hex.FromBytes(b[off : off+n])
}

func notHeader(cause error) error {
	return fmt.Errorf("dump: %v: %w", cause, types.ErrNotHeader)
}
