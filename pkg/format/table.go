package format

import "hash/fnv"

// registry holds the pure-function attributes for every [Format], indexed
// by its enum value. Built once at package init.
var registry = [numFormats]info{
	BinaryRdf: {
		canonicalMIME: "application/x-binary-rdf",
		acceptedMIMEs: []string{"application/x-binary-rdf"},
		canonicalExt:  "brf",
		acceptedExts:  []string{"brf"},
		humanName:     "Binary RDF",
		machine:       true,
		star:          true,
		standardURL:   "https://jena.apache.org/documentation/io/rdf-binary.html",
	},
	Csvw: {
		canonicalMIME: "text/csv",
		acceptedMIMEs: []string{"text/csv"},
		canonicalExt:  "csvw",
		acceptedExts:  []string{"csvw", "csv"},
		humanName:     "CSVW",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/tabular-data-primer/",
	},
	Hdt: {
		// Shares RdfXml's MIME type: HDT's header is normatively RDF/XML
		// and the format has no media type of its own; deliberately
		// excluded from the reverse MIME lookup, see the init skip list
		// below.
		canonicalMIME: "application/rdf+xml",
		acceptedMIMEs: []string{"application/rdf+xml"},
		canonicalExt:  "hdt",
		acceptedExts:  []string{"hdt"},
		humanName:     "HDT",
		machine:       true,
		standardURL:   "https://www.rdfhdt.org/",
	},
	HexTuples: {
		canonicalMIME: "application/hex+x-ndjson",
		acceptedMIMEs: []string{"application/hex+x-ndjson"},
		canonicalExt:  "hext",
		acceptedExts:  []string{"hext"},
		humanName:     "HexTuples",
		machine:       true,
		standardURL:   "https://github.com/ontola/hextuples",
	},
	Html: {
		canonicalMIME: "text/html",
		acceptedMIMEs: []string{"text/html", "application/xhtml+xml"},
		canonicalExt:  "html",
		acceptedExts:  []string{"html", "htm", "xhtml"},
		humanName:     "HTML",
		machine:       false,
		standardURL:   "https://html.spec.whatwg.org/",
	},
	JsonLd: {
		canonicalMIME: "application/ld+json",
		acceptedMIMEs: []string{"application/ld+json", "application/x-ld+json"},
		canonicalExt:  "jsonld",
		acceptedExts:  []string{"jsonld"},
		humanName:     "JSON-LD",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/json-ld11/",
	},
	Manchester: {
		canonicalMIME: "text/owl-manchester",
		acceptedMIMEs: []string{"text/owl-manchester"},
		canonicalExt:  "omn",
		acceptedExts:  []string{"omn"},
		humanName:     "Manchester Syntax",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/owl2-manchester-syntax/",
	},
	Microdata: {
		// Shares text/html's MIME type with Html; deliberately excluded
		// from the reverse MIME lookup, see the init skip list below.
		canonicalMIME: "text/html",
		acceptedMIMEs: []string{"text/html"},
		canonicalExt:  "microdata",
		acceptedExts:  []string{"microdata", "html", "htm"},
		humanName:     "Microdata",
		machine:       true,
		standardURL:   "https://html.spec.whatwg.org/multipage/microdata.html",
	},
	N3: {
		canonicalMIME: "text/rdf+n3",
		acceptedMIMEs: []string{"text/rdf+n3", "text/n3"},
		canonicalExt:  "n3",
		acceptedExts:  []string{"n3"},
		humanName:     "Notation3",
		machine:       true,
		standardURL:   "https://www.w3.org/TeamSubmission/n3/",
	},
	NdJsonLd: {
		canonicalMIME: "application/x-ld+ndjson",
		acceptedMIMEs: []string{"application/x-ld+ndjson"},
		canonicalExt:  "ndjsonld",
		acceptedExts:  []string{"ndjsonld"},
		humanName:     "JSON-LD (newline-delimited)",
		machine:       true,
		standardURL:   "https://json-ld.org/",
	},
	NQuads: {
		canonicalMIME: "application/n-quads",
		acceptedMIMEs: []string{"application/n-quads"},
		canonicalExt:  "nq",
		acceptedExts:  []string{"nq"},
		humanName:     "N-Quads",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/n-quads/",
	},
	NQuadsStar: {
		canonicalMIME: "application/n-quadsstar",
		acceptedMIMEs: []string{"application/n-quadsstar"},
		canonicalExt:  "nqs",
		acceptedExts:  []string{"nqs"},
		humanName:     "N-Quads-star",
		machine:       true,
		// Preserved from the original: N-Quads-star is not flagged as
		// RDF-star-capable despite the name.
		star:        false,
		standardURL: "https://w3c.github.io/rdf-star/cg-spec/2021-12-17.html#n-quads-star",
	},
	NTriples: {
		canonicalMIME: "application/n-triples",
		acceptedMIMEs: []string{"application/n-triples"},
		canonicalExt:  "nt",
		acceptedExts:  []string{"nt", "ntriples"},
		humanName:     "N-Triples",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/n-triples/",
	},
	NTriplesStar: {
		canonicalMIME: "application/n-triplesstar",
		acceptedMIMEs: []string{"application/n-triplesstar"},
		canonicalExt:  "nts",
		acceptedExts:  []string{"nts"},
		humanName:     "N-Triples-star",
		machine:       true,
		star:          true,
		standardURL:   "https://w3c.github.io/rdf-star/cg-spec/2021-12-17.html#n-triples-star",
	},
	OwlFunctional: {
		canonicalMIME: "text/owl-functional",
		acceptedMIMEs: []string{"text/owl-functional"},
		canonicalExt:  "ofn",
		acceptedExts:  []string{"ofn"},
		humanName:     "OWL Functional Syntax",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/owl2-syntax/",
	},
	OwlXml: {
		canonicalMIME: "application/owl+xml",
		acceptedMIMEs: []string{"application/owl+xml"},
		canonicalExt:  "owx",
		acceptedExts:  []string{"owx"},
		humanName:     "OWL/XML",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/owl2-xml-serialization/",
	},
	RdfA: {
		// Shares text/html's MIME type with Html; deliberately excluded
		// from the reverse MIME lookup, see the init skip list below.
		canonicalMIME: "text/html",
		acceptedMIMEs: []string{"text/html"},
		canonicalExt:  "rdfa",
		acceptedExts:  []string{"rdfa", "html"},
		humanName:     "RDFa",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/rdfa-primer/",
	},
	RdfJson: {
		canonicalMIME: "application/rdf+json",
		acceptedMIMEs: []string{"application/rdf+json"},
		canonicalExt:  "rj",
		acceptedExts:  []string{"rj"},
		humanName:     "RDF/JSON",
		machine:       true,
		standardURL:   "https://www.w3.org/2001/sw/RDFCore/rdfms-json/",
	},
	RdfXml: {
		canonicalMIME: "application/rdf+xml",
		acceptedMIMEs: []string{"application/rdf+xml", "application/xml"},
		canonicalExt:  "rdf",
		acceptedExts:  []string{"rdf", "rdfs", "owl", "xml"},
		humanName:     "RDF/XML",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/rdf-syntax-grammar/",
	},
	TriG: {
		canonicalMIME: "text/trig",
		acceptedMIMEs: []string{"text/trig", "application/trig", "application/x-trig"},
		canonicalExt:  "trig",
		acceptedExts:  []string{"trig"},
		humanName:     "TriG",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/trig/",
	},
	TriGStar: {
		canonicalMIME: "application/x-trigstar",
		acceptedMIMEs: []string{"application/x-trigstar"},
		canonicalExt:  "trigs",
		acceptedExts:  []string{"trigs"},
		humanName:     "TriG-star",
		machine:       true,
		star:          true,
		standardURL:   "https://w3c.github.io/rdf-star/cg-spec/2021-12-17.html#trig-star",
	},
	TriX: {
		canonicalMIME: "application/trix",
		acceptedMIMEs: []string{"application/trix"},
		canonicalExt:  "trix",
		acceptedExts:  []string{"trix"},
		humanName:     "TriX",
		machine:       true,
		standardURL:   "https://www.w3.org/2004/03/trix/",
	},
	Tsvw: {
		canonicalMIME: "text/tab-separated-values",
		acceptedMIMEs: []string{"text/tab-separated-values"},
		canonicalExt:  "tsvw",
		acceptedExts:  []string{"tsvw", "tsv"},
		humanName:     "TSVW",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/tabular-data-primer/",
	},
	Turtle: {
		canonicalMIME: "text/turtle",
		acceptedMIMEs: []string{"text/turtle", "application/x-turtle"},
		canonicalExt:  "ttl",
		acceptedExts:  []string{"ttl", "turtle"},
		humanName:     "Turtle",
		machine:       true,
		standardURL:   "https://www.w3.org/TR/turtle/",
	},
	TurtleStar: {
		canonicalMIME: "text/x-turtlestar",
		acceptedMIMEs: []string{"text/x-turtlestar", "application/x-turtlestar"},
		canonicalExt:  "ttls",
		acceptedExts:  []string{"ttls"},
		humanName:     "Turtle-star",
		machine:       true,
		star:          true,
		standardURL:   "https://w3c.github.io/rdf-star/cg-spec/2021-12-17.html#turtle-star",
	},
	YamlLd: {
		canonicalMIME: "application/ld+yaml",
		acceptedMIMEs: []string{"application/ld+yaml"},
		canonicalExt:  "yamlld",
		acceptedExts:  []string{"yamlld"},
		humanName:     "YAML-LD",
		machine:       true,
		standardURL:   "https://json-ld.github.io/yaml-ld/spec/",
	},
}

// mimeByHash and extByLower are built once from registry and used by
// ParseMIME/ParseExtension for O(1) lookup. The MIME table is keyed by a
// stable FNV-1a hash of the lowercased essence. Computing that key
// lowercases a copy of the essence, so a lookup does allocate.
var (
	mimeByHash = map[uint64]Format{}
	extByLower = map[string]Format{}
)

// noOwnMediaType lists formats that must never win a reverse MIME lookup
// because they have no media type of their own: Hdt's header is normatively
// RDF/XML (it would otherwise steal application/rdf+xml from RdfXml purely
// by enum declaration order), and Microdata/RdfA both declare text/html,
// which must always resolve to Html.
var noOwnMediaType = map[Format]bool{
	Hdt:       true,
	Microdata: true,
	RdfA:      true,
}

func init() {
	// Deliberately skip formats whose canonical MIME/ext is claimed by an
	// earlier entry in the enum, or that have no media type of their own
	// (see noOwnMediaType): the first remaining registrant wins, giving a
	// deterministic default for ambiguous identities (text/html -> Html;
	// "xml"/"html" extensions likewise resolve to the first format that
	// declared them).
	for f := Unknown + 1; f < numFormats; f++ {
		if !noOwnMediaType[f] {
			for _, m := range registry[f].acceptedMIMEs {
				h := hashEssence(m)
				if _, exists := mimeByHash[h]; !exists {
					mimeByHash[h] = f
				}
			}
		}
		for _, e := range registry[f].acceptedExts {
			key := lowerASCII(e)
			if _, exists := extByLower[key]; !exists {
				extByLower[key] = f
			}
		}
	}
}

func hashEssence(essence string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(lowerASCII(essence)))
	return h.Sum64()
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
