package convert

// Quality ranks how faithfully a converter preserves the source document,
// best first. It is the first and most significant field of [Info]'s total
// order.
type Quality int

const (
	QualityPreservesComments Quality = iota
	QualityPreservesFormatting
	QualityPreservesOrder
	QualityBase
	QualityPrefixes
	QualityData
)

func (q Quality) String() string {
	switch q {
	case QualityPreservesComments:
		return "preserves-comments"
	case QualityPreservesFormatting:
		return "preserves-formatting"
	case QualityPreservesOrder:
		return "preserves-order"
	case QualityBase:
		return "base"
	case QualityPrefixes:
		return "prefixes"
	case QualityData:
		return "data"
	default:
		return "unknown"
	}
}

// Priority is a coarse tiebreaker under equal [Quality].
type Priority int

const (
	PriorityHigh Priority = iota
	PriorityMid
	PriorityLow
)

func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "high"
	case PriorityMid:
		return "mid"
	case PriorityLow:
		return "low"
	default:
		return "unknown"
	}
}

// Kind classifies how a converter does its work.
type Kind int

const (
	KindInProcess Kind = iota
	KindExternalCLI
	KindNetworkService
)

func (k Kind) String() string {
	switch k {
	case KindInProcess:
		return "in-process"
	case KindExternalCLI:
		return "external-cli"
	case KindNetworkService:
		return "network-service"
	default:
		return "unknown"
	}
}

// Info is the tuple that induces the total dispatch order over converters:
// lexicographic on (Quality, Priority, Kind, Name), best first.
type Info struct {
	Quality  Quality
	Priority Priority
	Kind     Kind
	Name     string
}

// Less reports whether i sorts strictly before other in dispatch order.
func (i Info) Less(other Info) bool {
	if i.Quality != other.Quality {
		return i.Quality < other.Quality
	}
	if i.Priority != other.Priority {
		return i.Priority < other.Priority
	}
	if i.Kind != other.Kind {
		return i.Kind < other.Kind
	}
	return i.Name < other.Name
}
