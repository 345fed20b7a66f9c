package state

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// noneLiteral marks an absent value in the record.
const noneLiteral = "None"

// decoder carries per-load decoding rules.
type decoder struct {
	strictBool bool
}

// field binds a record key to typed accessors on GameState.
type field struct {
	key    string
	encode func(s *GameState) string
	decode func(s *GameState, raw string, d decoder) error
}

// fields is the record layout, in write order.
var fields = []field{
	{
		key:    "scene",
		encode: func(s *GameState) string { return string(s.Scene) },
		decode: func(s *GameState, raw string, _ decoder) error {
			sc, err := ParseScene(raw)
			if err != nil {
				return err
			}
			if sc == SceneSave {
				sc = ScenePlay
			}
			s.Scene = sc
			return nil
		},
	},
	{
		key:    "mode",
		encode: func(s *GameState) string { return encodeString(string(s.Mode)) },
		decode: func(s *GameState, raw string, _ decoder) error {
			m, err := ParseMode(decodeString(raw))
			if err != nil {
				return err
			}
			s.Mode = m
			return nil
		},
	},
	{
		key:    "with_timer",
		encode: func(s *GameState) string { return encodeOptBool(s.WithTimer) },
		decode: func(s *GameState, raw string, d decoder) error {
			s.WithTimer = decodeOptBool(raw, d.strictBool)
			return nil
		},
	},
	{
		key:    "time_left",
		encode: func(s *GameState) string { return encodeOptInt(s.TimeLeft) },
		decode: func(s *GameState, raw string, _ decoder) (err error) {
			s.TimeLeft, err = decodeOptInt(raw)
			return err
		},
	},
	{
		key:    "char_seq",
		encode: func(s *GameState) string { return encodeString(s.CharSeq) },
		decode: func(s *GameState, raw string, _ decoder) error {
			s.CharSeq = decodeString(raw)
			return nil
		},
	},
	{
		key:    "retries",
		encode: func(s *GameState) string { return strconv.Itoa(s.Retries) },
		decode: func(s *GameState, raw string, _ decoder) error {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("retries %q is not an integer", raw)
			}
			if n < 0 || n > MaxRetries {
				return fmt.Errorf("retries %d outside [0,%d]", n, MaxRetries)
			}
			s.Retries = n
			return nil
		},
	},
	{
		key:    "score",
		encode: func(s *GameState) string { return strconv.Itoa(s.Score) },
		decode: func(s *GameState, raw string, _ decoder) error {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				return fmt.Errorf("score %q is not a non-negative integer", raw)
			}
			s.Score = n
			return nil
		},
	},
	{
		key:    "valid_words",
		encode: func(s *GameState) string { return encodeList(s.ValidWords) },
		decode: func(s *GameState, raw string, _ decoder) (err error) {
			s.ValidWords, err = decodeList(raw)
			return err
		},
	},
	{
		key:    "used_words",
		encode: func(s *GameState) string { return encodeList(s.UsedWords) },
		decode: func(s *GameState, raw string, _ decoder) (err error) {
			s.UsedWords, err = decodeList(raw)
			return err
		},
	},
}

var fieldsByKey = func() map[string]field {
	m := make(map[string]field, len(fields))
	for _, f := range fields {
		m[f.key] = f
	}
	return m
}()

// Encode writes s as one key=value line per field, in the fixed field order.
func Encode(w io.Writer, s *GameState) error {
	bw := bufio.NewWriter(w)
	for _, f := range fields {
		if _, err := fmt.Fprintf(bw, "%s=%s\n", f.key, f.encode(s)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Decode parses a record produced by Encode. Keys missing from the record
// keep their default values and unknown keys are ignored.
//
// with_timer follows the legacy rule that any non-empty text is true, so a
// stored False reads back as true. Pass strictBool to decode False as false.
func Decode(r io.Reader, strictBool bool) (*GameState, error) {
	s := Default()
	d := decoder{strictBool: strictBool}

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: line %d: want key=value, got %q", ErrMalformedSaveRecord, lineNo, line)
		}
		key, raw := parts[0], parts[1]

		f, ok := fieldsByKey[key]
		if !ok {
			continue
		}
		if err := f.decode(s, raw, d); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedSaveRecord, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSaveRecord, err)
	}

	return s, nil
}

func encodeString(v string) string {
	if v == "" {
		return noneLiteral
	}
	return v
}

func decodeString(raw string) string {
	if raw == noneLiteral {
		return ""
	}
	return raw
}

func encodeOptBool(v *bool) string {
	switch {
	case v == nil:
		return noneLiteral
	case *v:
		return "True"
	default:
		return "False"
	}
}

func decodeOptBool(raw string, strict bool) *bool {
	if raw == noneLiteral {
		return nil
	}
	if strict && raw == "False" {
		return Bool(false)
	}
	return Bool(raw != "")
}

func encodeOptInt(v *int) string {
	if v == nil {
		return noneLiteral
	}
	return strconv.Itoa(*v)
}

func decodeOptInt(raw string) (*int, error) {
	if raw == noneLiteral {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%q is not an integer", raw)
	}
	return &n, nil
}

func encodeList(v []string) string {
	if v == nil {
		return noneLiteral
	}
	return "[" + strings.Join(v, ",") + "]"
}

func decodeList(raw string) ([]string, error) {
	if raw == noneLiteral {
		return nil, nil
	}
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return nil, fmt.Errorf("list %q is not bracketed", raw)
	}
	inner := raw[1 : len(raw)-1]
	if inner == "" {
		return []string{}, nil
	}
	return strings.Split(inner, ","), nil
}
