package overlap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nanopore-tools/sgasm/container"
)

// Ingest reads the overlap relation from r: one whitespace-separated record
// per line, until a line beginning with "-" terminates the stream (matching
// legacy trailer sections some overlap files carry). Records are normalised
// (GBegin/GEnd swapped when GStrand==1, so GBegin<GEnd always means forward)
// and deduplicated on the unordered pair (FID, GID), keeping the first
// occurrence, mirroring the source tool's overlap_set bookkeeping.
//
// A malformed line (wrong field count, non-numeric required field) is a
// fatal error: the caller should abort the whole pipeline run.
func Ingest(r io.Reader) ([]Record, error) {
	seen := container.NewOrderedSet[string]()
	var out []Record

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "-") {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("overlap: line %d: %w", lineNo, err)
		}

		a, b := rec.FID, rec.GID
		if a > b {
			a, b = b, a
		}
		if !seen.Add(a + "\x00" + b) {
			continue
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("overlap: %w", err)
	}

	return out, nil
}

// IngestProgress behaves like Ingest but reports read progress against a
// known total byte size under label, using a container.StreamProgress.
// Pass size<=0 to get an indeterminate spinner instead of a percentage bar.
func IngestProgress(r io.Reader, size int64, label string) ([]Record, error) {
	return Ingest(container.NewStreamProgress(r, size, label))
}

func parseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 12 {
		return Record{}, fmt.Errorf("expected at least 12 fields, got %d", len(fields))
	}

	score, err := strconv.Atoi(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("score: %w", err)
	}
	identity, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return Record{}, fmt.Errorf("identity: %w", err)
	}

	ints := make([]int, 8)
	for i := 0; i < 8; i++ {
		v, err := strconv.Atoi(fields[4+i])
		if err != nil {
			return Record{}, fmt.Errorf("field %d: %w", 4+i, err)
		}
		ints[i] = v
	}

	inphase := "u"
	if len(fields) >= 15 {
		inphase = fields[14]
	}

	rec := Record{
		FID: fields[0], GID: fields[1],
		Score: score, Identity: identity,
		FStrand: ints[0], FBegin: ints[1], FEnd: ints[2], FLen: ints[3],
		GStrand: ints[4], GBegin: ints[5], GEnd: ints[6], GLen: ints[7],
		InPhase: inphase,
	}
	if rec.GStrand == 1 {
		rec.GBegin, rec.GEnd = rec.GEnd, rec.GBegin
	}

	return rec, nil
}
