package logstore

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"hash/crc32"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/aldoforce/apex-logger-services/internal/logbook"
)

// Value encoding: varint headerLen | header (JSON) | payload | crc32c(header|payload)

const codecGzip = "gzip"

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

var errCorruptRecord = errors.New("logstore: corrupt record value")

type recordHeader struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	CreatedAtMs  int64  `json:"createdAtMs"`
	ModifiedAtMs int64  `json:"modifiedAtMs"`
	BodyLen      int    `json:"bodyLen"`
	Codec        string `json:"codec,omitempty"`
}

func encodeRecord(rec *logbook.Record, compress bool) ([]byte, error) {
	hdr := recordHeader{
		ID:           rec.ID,
		DisplayName:  rec.DisplayName,
		CreatedAtMs:  rec.CreatedAt.UnixMilli(),
		ModifiedAtMs: rec.ModifiedAt.UnixMilli(),
		BodyLen:      len(rec.Body),
	}

	payload := []byte(rec.Body)
	if compress && len(payload) > 0 {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		payload = buf.Bytes()
		hdr.Codec = codecGzip
	}

	header, err := json.Marshal(hdr)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, 10+len(header)+len(payload)+4)
	var tmp [10]byte
	n := binary.PutUvarint(tmp[:], uint64(len(header)))
	out = append(out, tmp[:n]...)
	out = append(out, header...)
	out = append(out, payload...)

	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	var crcb [4]byte
	binary.BigEndian.PutUint32(crcb[:], crc)
	out = append(out, crcb[:]...)
	return out, nil
}

func splitValue(b []byte) (recordHeader, []byte, error) {
	var hdr recordHeader
	if len(b) < 1+4 {
		return hdr, nil, errCorruptRecord
	}
	hlen, n := binary.Uvarint(b)
	if n <= 0 || n+int(hlen)+4 > len(b) {
		return hdr, nil, errCorruptRecord
	}
	header := b[n : n+int(hlen)]
	payload := b[n+int(hlen) : len(b)-4]

	expect := binary.BigEndian.Uint32(b[len(b)-4:])
	crc := crc32.Update(0, castagnoli, header)
	crc = crc32.Update(crc, castagnoli, payload)
	if crc != expect {
		return hdr, nil, errCorruptRecord
	}
	if err := json.Unmarshal(header, &hdr); err != nil {
		return hdr, nil, errCorruptRecord
	}
	return hdr, payload, nil
}

func decodeRecord(sortKey string, b []byte) (*logbook.Record, error) {
	hdr, payload, err := splitValue(b)
	if err != nil {
		return nil, err
	}

	body := payload
	if hdr.Codec == codecGzip && len(payload) > 0 {
		zr, err := gzip.NewReader(bytes.NewReader(payload))
		if err != nil {
			return nil, errCorruptRecord
		}
		body, err = io.ReadAll(zr)
		if cerr := zr.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return nil, errCorruptRecord
		}
	}

	return &logbook.Record{
		ID:          hdr.ID,
		DisplayName: hdr.DisplayName,
		SortKey:     sortKey,
		Body:        string(body),
		CreatedAt:   time.UnixMilli(hdr.CreatedAtMs),
		ModifiedAt:  time.UnixMilli(hdr.ModifiedAtMs),
	}, nil
}

// decodeInfo reads record metadata without touching the payload.
func decodeInfo(sortKey string, b []byte) (logbook.RecordInfo, error) {
	hdr, _, err := splitValue(b)
	if err != nil {
		return logbook.RecordInfo{}, err
	}
	return logbook.RecordInfo{
		ID:          hdr.ID,
		DisplayName: hdr.DisplayName,
		SortKey:     sortKey,
		BodyLen:     hdr.BodyLen,
		CreatedAt:   time.UnixMilli(hdr.CreatedAtMs),
		ModifiedAt:  time.UnixMilli(hdr.ModifiedAtMs),
	}, nil
}
