package screening

// Feature defaults and thresholds. A missing answer contributes the
// neutral score; a missing reaction time the neutral elapsed time. The
// two timed features flip to the high score only under their thresholds.
const (
	DefaultScore     = 5
	HighScore        = 10
	DefaultElapsedMS = 3000

	visualSpeedThresholdMS = 2500
	rapidNamingThresholdMS = 1500
)

// FeaturePayload is the fixed 9-skill-field summary sent to the external
// classifier, plus the demographic fields it expects. Every field is
// always populated; the JSON names are the classifier's contract.
type FeaturePayload struct {
	Age            int    `json:"Age"`
	Gender         string `json:"Gender"`
	NativeLangCode int    `json:"NativeLang_Code"`

	F1Rhyme             int `json:"F1_Rhyme"`
	F2Alliteration      int `json:"F2_Alliteration"`
	F3SoundSegmentation int `json:"F3_SoundSegmentation"`
	F4WordReadingSpeed  int `json:"F4_WordReadingSpeed"`
	F5NonWordReading    int `json:"F5_NonWordReading"`
	F6Spelling          int `json:"F6_Spelling"`
	F7VisualPerception  int `json:"F7_VisualPerception"`
	F8MemorySpan        int `json:"F8_MemorySpan"`
	F9RapidNaming       int `json:"F9_RapidNaming"`
}

// A wrong answer scores 0, which the payload treats the same as a
// missing one: the classifier was trained on skill values in {5, 10}.
func scoreOrDefault(records map[int]AnswerRecord, questionID int) int {
	if r, ok := records[questionID]; ok && r.Score != 0 {
		return r.Score
	}
	return DefaultScore
}

func elapsedOrDefault(records map[int]AnswerRecord, questionID int) int64 {
	if r, ok := records[questionID]; ok {
		return r.ElapsedMS
	}
	return DefaultElapsedMS
}

// BuildPayload maps the answer records onto the classifier schema.
//
// Several skill dimensions are approximated from a single proxy question:
// the rhyme question feeds F1, F2 and F3, and the nonword question feeds
// F5 and F6. This is an intentional simplification of the prototype
// battery, not a bug. F4 and F9 are derived from reaction times against
// fixed thresholds rather than from correctness.
func BuildPayload(d Demographics, records map[int]AnswerRecord) FeaturePayload {
	phonological := scoreOrDefault(records, 1)
	decoding := scoreOrDefault(records, 4)

	visualMS := elapsedOrDefault(records, 2)
	wordReadingSpeed := DefaultScore
	if visualMS < visualSpeedThresholdMS {
		wordReadingSpeed = HighScore
	}

	rapidMS := elapsedOrDefault(records, 5)
	rapidNaming := DefaultScore
	if rapidMS < rapidNamingThresholdMS {
		rapidNaming = HighScore
	}

	langCode := d.NativeLangCode
	if langCode == 0 {
		langCode = 1
	}

	return FeaturePayload{
		Age:            d.Age,
		Gender:         d.Gender,
		NativeLangCode: langCode,

		F1Rhyme:             phonological,
		F2Alliteration:      phonological,
		F3SoundSegmentation: phonological,
		F4WordReadingSpeed:  wordReadingSpeed,
		F5NonWordReading:    decoding,
		F6Spelling:          decoding,
		F7VisualPerception:  scoreOrDefault(records, 2),
		F8MemorySpan:        scoreOrDefault(records, 3),
		F9RapidNaming:       rapidNaming,
	}
}
