package convert

import (
	"context"
	"io"
	"os"

	"github.com/knakk/rdf"

	"github.com/ontoproxy/ontoproxy/pkg/cache"
	"github.com/ontoproxy/ontoproxy/pkg/format"
)

// inProcessConverter is a streaming, quad-by-quad parse→serialize backend
// built on github.com/knakk/rdf. It is always available and ranks highest
// in dispatch order (no subprocess, no external dependency), matching
// original_source's oxrdfio backend (Quality::Data, Priority::High,
// Type::Native). knakk/rdf only speaks N-Triples, N-Quads, Turtle, and
// RDF/XML: OWL/XML is read and written as RDF/XML, and N-Triples-star,
// N-Quads-star and Turtle-star with their non-star codecs (so RDF-star
// syntax in the input is a syntax error). N3, TriG and TriG-star are not
// supported and fall through to an external-CLI backend at dispatch time.
type inProcessConverter struct{}

func newInProcess() Converter { return inProcessConverter{} }

func (inProcessConverter) Info() Info {
	return Info{Quality: QualityData, Priority: PriorityHigh, Kind: KindInProcess, Name: "knakk/rdf"}
}

func (inProcessConverter) Available() bool { return true }

func (inProcessConverter) Supports(from, to format.Format) bool {
	_, fromOK := toKnakkFormat(from)
	_, toOK := toKnakkFormat(to)
	return fromOK && toOK
}

func (inProcessConverter) Convert(ctx context.Context, from, to cache.OntologyFile) error {
	fromFmt, ok := toKnakkFormat(from.Format)
	if !ok {
		return errNoConverter(from.Format, to.Format)
	}
	toFmt, ok := toKnakkFormat(to.Format)
	if !ok {
		return errNoConverter(from.Format, to.Format)
	}

	in, err := os.Open(from.Path)
	if err != nil {
		return errIO("failed to open conversion source", err)
	}
	defer in.Close()

	out, err := os.Create(to.Path)
	if err != nil {
		return errIO("failed to create conversion target", err)
	}
	defer out.Close()

	if isQuadFormat(from.Format) {
		return decodeQuadsEncode(ctx, in, fromFmt, out, toFmt, isQuadFormat(to.Format))
	}
	return decodeTriplesEncode(ctx, in, fromFmt, out, toFmt, isQuadFormat(to.Format))
}

// toKnakkFormat maps a [format.Format] to the knakk/rdf format it is
// decoded/encoded as. Only the four formats knakk/rdf actually implements
// are covered.
func toKnakkFormat(f format.Format) (rdf.Format, bool) {
	switch f {
	case format.NTriples, format.NTriplesStar:
		return rdf.NTriples, true
	case format.NQuads, format.NQuadsStar:
		return rdf.NQuads, true
	case format.Turtle, format.TurtleStar:
		return rdf.Turtle, true
	case format.RdfXml, format.OwlXml:
		return rdf.RDFXML, true
	default:
		return 0, false
	}
}

func isQuadFormat(f format.Format) bool {
	return f == format.NQuads || f == format.NQuadsStar
}

// decodeTriplesEncode streams a triple-based source into either a
// triple-based or quad-based (default graph) sink.
func decodeTriplesEncode(ctx context.Context, in io.Reader, fromFmt rdf.Format, out io.Writer, toFmt rdf.Format, toIsQuad bool) error {
	dec := rdf.NewTripleDecoder(in, fromFmt)

	if !toIsQuad {
		enc := rdf.NewTripleEncoder(out, toFmt)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				return errSyntax(err.Error())
			}
			if err := enc.Encode(t); err != nil {
				return errIO("failed to write converted triple", err)
			}
		}
		if err := enc.Close(); err != nil {
			return errIO("failed to finalize conversion output", err)
		}
		return nil
	}

	enc := rdf.NewQuadEncoder(out, toFmt)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errSyntax(err.Error())
		}
		if err := enc.Encode(rdf.Quad{Triple: t}); err != nil {
			return errIO("failed to write converted quad", err)
		}
	}
	if err := enc.Close(); err != nil {
		return errIO("failed to finalize conversion output", err)
	}
	return nil
}

// decodeQuadsEncode streams a quad-based source (N-Quads) into either a
// quad-based or triple-based (graph dropped) sink.
func decodeQuadsEncode(ctx context.Context, in io.Reader, fromFmt rdf.Format, out io.Writer, toFmt rdf.Format, toIsQuad bool) error {
	dec := rdf.NewQuadDecoder(in, fromFmt)

	if toIsQuad {
		enc := rdf.NewQuadEncoder(out, toFmt)
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			q, err := dec.Decode()
			if err == io.EOF {
				break
			}
			if err != nil {
				return errSyntax(err.Error())
			}
			if err := enc.Encode(q); err != nil {
				return errIO("failed to write converted quad", err)
			}
		}
		if err := enc.Close(); err != nil {
			return errIO("failed to finalize conversion output", err)
		}
		return nil
	}

	enc := rdf.NewTripleEncoder(out, toFmt)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		q, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errSyntax(err.Error())
		}
		if err := enc.Encode(q.Triple); err != nil {
			return errIO("failed to write converted triple", err)
		}
	}
	if err := enc.Close(); err != nil {
		return errIO("failed to finalize conversion output", err)
	}
	return nil
}
