package domain

// AcquiredContent is the closed set of payload shapes returned by the
// acquisition clients. Consumers switch exhaustively over the variants
// rather than probing arbitrary JSON properties.
type AcquiredContent interface {
	isAcquiredContent()
}

// TextCorpus is plain text ready for matching (video subtitles).
type TextCorpus string

// StructuredPayload is the opaque nested tree returned by the scrape
// collaborator. Data holds the decoded JSON value.
type StructuredPayload struct {
	Data any
}

// TranscriptTone is a video transcript paired with an externally supplied
// tone description.
type TranscriptTone struct {
	Transcript string
	Tone       string
}

func (TextCorpus) isAcquiredContent()        {}
func (StructuredPayload) isAcquiredContent() {}
func (TranscriptTone) isAcquiredContent()    {}
