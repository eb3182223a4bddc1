package trx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/AleksandrSmirnovB2T/CICD/internal/errors"
)

// Element names recognised by the decoder, all in Namespace.
const (
	resultsElement        = "Results"
	definitionsElement    = "TestDefinitions"
	unitTestElement       = "UnitTest"
	unitTestResultElement = "UnitTestResult"
)

type unitTest struct {
	ID         string      `xml:"id,attr"`
	Name       string      `xml:"name,attr"`
	TestMethod *testMethod `xml:"http://microsoft.com/schemas/VisualStudio/TeamTest/2010 TestMethod"`
}

type testMethod struct {
	ClassName string `xml:"className,attr"`
	Name      string `xml:"name,attr"`
}

type unitTestResult struct {
	TestName string `xml:"testName,attr"`
	Outcome  string `xml:"outcome,attr"`
	TestID   string `xml:"testId,attr"`
	Duration string `xml:"duration,attr"`
	Message  string `xml:"Output>ErrorInfo>Message"`
}

// ResolveInput checks that path names an existing regular file.
func ResolveInput(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.Usage("TRX file path is empty")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound(path, "file not found")
		}
		return &errors.ReportError{
			Kind:    errors.KindNotFound,
			Path:    path,
			Message: "cannot access file",
			Cause:   err,
		}
	}
	if !info.Mode().IsRegular() {
		return errors.NotFound(path, "not a regular file")
	}
	return nil
}

// DecodeFile decodes the TRX document at path.
func DecodeFile(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NotFound(path, err.Error())
	}
	defer func() { _ = f.Close() }()

	run, err := Decode(f)
	if err != nil {
		if re, ok := err.(*errors.ReportError); ok {
			return nil, re.WithPath(path)
		}
		return nil, err
	}
	return run, nil
}

// Decode reads a TRX document in a single forward pass. Only the records
// are kept in memory; every other subtree is skipped as it streams by.
//
// Elements are matched by exact namespace: the root must be in Namespace,
// Results and TestDefinitions must be direct children of the root, and
// UnitTestResult / UnitTest records must be direct children of those.
// A document that is not well-formed yields a KindMalformed error; one that
// lacks either container yields KindIncomplete.
func Decode(r io.Reader) (*Run, error) {
	dec := xml.NewDecoder(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	dec.CharsetReader = charsetReader

	run := &Run{}
	var (
		depth           int
		container       string
		rootSeen        bool
		resultsSeen     bool
		definitionsSeen bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Malformed("", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				rootSeen = true
				if t.Name.Space != Namespace {
					return nil, errors.Incomplete("", fmt.Sprintf("root element <%s> is not in the TRX namespace %s", t.Name.Local, Namespace))
				}
			case 2:
				container = ""
				if t.Name.Space == Namespace {
					switch t.Name.Local {
					case resultsElement:
						resultsSeen = true
						container = resultsElement
					case definitionsElement:
						definitionsSeen = true
						container = definitionsElement
					}
				}
			case 3:
				consumed, err := decodeRecord(dec, &t, container, run)
				if err != nil {
					return nil, err
				}
				if consumed {
					// DecodeElement read through the matching end element.
					depth--
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if !rootSeen {
		return nil, errors.Malformed("", fmt.Errorf("document has no root element"))
	}
	if !resultsSeen {
		return nil, errors.Incomplete("", "missing <Results> section")
	}
	if !definitionsSeen {
		return nil, errors.Incomplete("", "missing <TestDefinitions> section")
	}

	return run, nil
}

// decodeRecord decodes start as a record when it is one for the current
// container. It reports whether the element was consumed.
func decodeRecord(dec *xml.Decoder, start *xml.StartElement, container string, run *Run) (bool, error) {
	if start.Name.Space != Namespace {
		return false, nil
	}

	switch {
	case container == resultsElement && start.Name.Local == unitTestResultElement:
		var raw unitTestResult
		if err := dec.DecodeElement(&raw, start); err != nil {
			return false, errors.Malformed("", err)
		}
		run.addResult(raw)
		return true, nil

	case container == definitionsElement && start.Name.Local == unitTestElement:
		var raw unitTest
		if err := dec.DecodeElement(&raw, start); err != nil {
			return false, errors.Malformed("", err)
		}
		run.addDefinition(raw)
		return true, nil
	}

	return false, nil
}

func (r *Run) addDefinition(raw unitTest) {
	suite := UnknownSuite
	if raw.TestMethod != nil && raw.TestMethod.ClassName != "" {
		suite = raw.TestMethod.ClassName
	}
	r.Definitions = append(r.Definitions, TestDefinition{
		ID:    raw.ID,
		Name:  raw.Name,
		Suite: suite,
	})
}

func (r *Run) addResult(raw unitTestResult) {
	duration, ok := ParseDurationOK(raw.Duration)
	if !ok && strings.TrimSpace(raw.Duration) != "" {
		r.DegradedDurations++
	}
	r.Results = append(r.Results, TestResult{
		Name:        raw.TestName,
		Outcome:     raw.Outcome,
		Duration:    duration,
		RawDuration: raw.Duration,
		TestID:      raw.TestID,
		Message:     strings.TrimSpace(raw.Message),
	})
}

// charsetReader resolves the encoding named in the XML declaration.
// A UTF-16 document must start with a BOM, and BOMOverride has already
// transcoded it to UTF-8, so UTF-16 labels pass through unchanged.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "", "utf8", "utf-8", "utf-16", "utf-16le", "utf-16be", "unicode":
		return input, nil
	}

	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
