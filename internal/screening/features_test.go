package screening_test

import (
	"encoding/json"
	"testing"

	"lexiscreen_backend/internal/screening"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayloadDefaultsWhenNoAnswers(t *testing.T) {
	d := screening.Demographics{Age: 10, Gender: "Female"}
	p := screening.BuildPayload(d, nil)

	assert.Equal(t, 10, p.Age)
	assert.Equal(t, "Female", p.Gender)
	assert.Equal(t, 1, p.NativeLangCode, "language code defaults to 1")

	// All nine skill fields populated with defaults; the default 3000ms
	// reaction times are over both thresholds, so the timed features stay
	// at the neutral score too.
	for _, v := range []int{
		p.F1Rhyme, p.F2Alliteration, p.F3SoundSegmentation,
		p.F4WordReadingSpeed, p.F5NonWordReading, p.F6Spelling,
		p.F7VisualPerception, p.F8MemorySpan, p.F9RapidNaming,
	} {
		assert.Equal(t, screening.DefaultScore, v)
	}
}

func TestBuildPayloadSharedProxyQuestions(t *testing.T) {
	records := map[int]screening.AnswerRecord{
		1: {QuestionID: 1, Score: 10, ElapsedMS: 1000},
		4: {QuestionID: 4, Score: 0, ElapsedMS: 2000},
	}
	p := screening.BuildPayload(screening.Demographics{Age: 9, Gender: "Male"}, records)

	// Question 1 feeds the three phonological features.
	assert.Equal(t, 10, p.F1Rhyme)
	assert.Equal(t, 10, p.F2Alliteration)
	assert.Equal(t, 10, p.F3SoundSegmentation)

	// Question 4 feeds decoding and spelling. A zero (wrong) score is
	// coerced to the neutral value; the schema only carries {5, 10}.
	assert.Equal(t, screening.DefaultScore, p.F5NonWordReading)
	assert.Equal(t, screening.DefaultScore, p.F6Spelling)
}

func TestBuildPayloadSkillFieldsStayInSchema(t *testing.T) {
	// Every question answered wrong: the payload must still contain no
	// value outside the {5, 10} set the classifier expects.
	records := map[int]screening.AnswerRecord{}
	for id := 1; id <= 5; id++ {
		records[id] = screening.AnswerRecord{QuestionID: id, Score: 0, ElapsedMS: 4000}
	}
	p := screening.BuildPayload(screening.Demographics{Age: 7, Gender: "Female"}, records)

	for _, v := range []int{
		p.F1Rhyme, p.F2Alliteration, p.F3SoundSegmentation,
		p.F4WordReadingSpeed, p.F5NonWordReading, p.F6Spelling,
		p.F7VisualPerception, p.F8MemorySpan, p.F9RapidNaming,
	} {
		assert.Contains(t, []int{screening.DefaultScore, screening.HighScore}, v)
	}
}

func TestBuildPayloadTimingThresholds(t *testing.T) {
	fast := map[int]screening.AnswerRecord{
		2: {QuestionID: 2, Score: 10, ElapsedMS: 2499},
		5: {QuestionID: 5, Score: 10, ElapsedMS: 1499},
	}
	p := screening.BuildPayload(screening.Demographics{Age: 8, Gender: "Male"}, fast)
	assert.Equal(t, screening.HighScore, p.F4WordReadingSpeed)
	assert.Equal(t, screening.HighScore, p.F9RapidNaming)

	slow := map[int]screening.AnswerRecord{
		2: {QuestionID: 2, Score: 10, ElapsedMS: 2500},
		5: {QuestionID: 5, Score: 10, ElapsedMS: 1500},
	}
	p = screening.BuildPayload(screening.Demographics{Age: 8, Gender: "Male"}, slow)
	assert.Equal(t, screening.DefaultScore, p.F4WordReadingSpeed)
	assert.Equal(t, screening.DefaultScore, p.F9RapidNaming)

	// F7 copies the raw visual score regardless of timing.
	assert.Equal(t, 10, p.F7VisualPerception)
}

func TestPayloadJSONFieldNames(t *testing.T) {
	p := screening.BuildPayload(screening.Demographics{Age: 11, Gender: "Male", NativeLangCode: 2}, nil)
	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{
		"Age", "Gender", "NativeLang_Code",
		"F1_Rhyme", "F2_Alliteration", "F3_SoundSegmentation",
		"F4_WordReadingSpeed", "F5_NonWordReading", "F6_Spelling",
		"F7_VisualPerception", "F8_MemorySpan", "F9_RapidNaming",
	} {
		assert.Contains(t, m, key)
	}
}
