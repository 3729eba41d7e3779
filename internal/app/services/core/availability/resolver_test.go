package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func fixedResolver(now time.Time) *Resolver {
	resolver := NewResolver(time.UTC)
	resolver.now = func() time.Time { return now }
	return resolver
}

var defaultWeek = []string{
	"2024-03-11", "2024-03-12", "2024-03-13", "2024-03-14",
	"2024-03-15", "2024-03-16", "2024-03-17",
}

func TestResolver_Fallback(t *testing.T) {
	resolver := fixedResolver(time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC))

	cases := map[string]Availability{
		"missing":          Missing(),
		"malformed string": Raw("{not json"),
		"non array json":   Raw(`{"date":"2024-03-12"}`),
		"empty string":     Raw(""),
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			schedule := resolver.Resolve(input)

			assert.True(t, schedule.Fallback)
			assert.Equal(t, defaultWeek, schedule.Dates)
			assert.Equal(t, "2024-03-11", schedule.FirstDate())
			for _, date := range schedule.Dates {
				assert.Equal(t, []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}, schedule.SlotsFor(date))
			}
		})
	}
}

func TestResolver_Structured(t *testing.T) {
	resolver := fixedResolver(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	schedule := resolver.Resolve(Structured([]Day{
		{Date: "2024-03-12", Slots: []string{"10:00", "11:00"}},
		{Date: "2024-03-14", Slots: []string{"15:00"}},
	}))

	assert.False(t, schedule.Fallback)
	assert.Equal(t, []string{"2024-03-12", "2024-03-14"}, schedule.Dates)
	assert.Equal(t, []string{"10:00", "11:00"}, schedule.SlotsFor("2024-03-12"))
	assert.Equal(t, "2024-03-12", schedule.FirstDate())
}

func TestResolver_ExactDateMatch(t *testing.T) {
	resolver := fixedResolver(time.Now())

	schedule := resolver.Resolve(Structured([]Day{{Date: "2024-03-12", Slots: []string{"10:00"}}}))

	assert.Empty(t, schedule.SlotsFor("2024-3-12"))
	assert.Empty(t, schedule.SlotsFor("2024-03-12T00:00:00Z"))
	assert.NotNil(t, schedule.SlotsFor("2024-03-13"))
}

func TestResolver_RawJSONArray(t *testing.T) {
	resolver := fixedResolver(time.Now())

	schedule := resolver.Resolve(Raw(`[{"date":"2024-05-01","slots":["09:00",7,"13:00"]},{"slots":["10:00"]}]`))

	assert.False(t, schedule.Fallback)
	assert.Equal(t, []string{"2024-05-01"}, schedule.Dates)
	assert.Equal(t, []string{"09:00", "13:00"}, schedule.SlotsFor("2024-05-01"))
}

func TestResolver_EmptyStructuredListHasNoDates(t *testing.T) {
	schedule := fixedResolver(time.Now()).Resolve(Structured([]Day{}))

	assert.False(t, schedule.Fallback)
	assert.Empty(t, schedule.Dates)
	assert.Equal(t, "", schedule.FirstDate())
}

func TestResolver_DuplicateDatesKeepFirst(t *testing.T) {
	schedule := fixedResolver(time.Now()).Resolve(Structured([]Day{
		{Date: "2024-03-12", Slots: []string{"09:00"}},
		{Date: "2024-03-12", Slots: []string{"16:00"}},
	}))

	assert.Equal(t, []string{"09:00"}, schedule.SlotsFor("2024-03-12"))
}

func rawValueOf(t *testing.T, value interface{}) bson.RawValue {
	t.Helper()
	doc, err := bson.Marshal(bson.M{"availability": value})
	require.NoError(t, err)
	return bson.Raw(doc).Lookup("availability")
}

func TestFromBSON(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		a := FromBSON(rawValueOf(t, `[{"date":"2024-01-01","slots":["09:00"]}]`))
		assert.Equal(t, KindRaw, a.Kind())
	})

	t.Run("array of documents", func(t *testing.T) {
		a := FromBSON(rawValueOf(t, bson.A{
			bson.M{"date": "2024-01-01", "slots": bson.A{"09:00", 10, "11:00"}},
			bson.M{"date": 20240102},
			"stray",
		}))
		require.Equal(t, KindStructured, a.Kind())
		assert.Equal(t, []Day{{Date: "2024-01-01", Slots: []string{"09:00", "11:00"}}}, a.Days())
	})

	t.Run("absent", func(t *testing.T) {
		assert.Equal(t, KindMissing, FromBSON(bson.RawValue{}).Kind())
	})

	t.Run("other shape", func(t *testing.T) {
		assert.Equal(t, KindMissing, FromBSON(rawValueOf(t, 42)).Kind())
	})
}

func TestFromJSON(t *testing.T) {
	assert.Equal(t, KindRaw, FromJSON([]byte(`"[]"`)).Kind())
	assert.Equal(t, KindStructured, FromJSON([]byte(`[{"date":"2024-01-01","slots":[]}]`)).Kind())
	assert.Equal(t, KindMissing, FromJSON([]byte(`null`)).Kind())
	assert.Equal(t, KindMissing, FromJSON([]byte(`{oops`)).Kind())
}

func TestStorageValue(t *testing.T) {
	assert.Equal(t, "raw", Raw("raw").StorageValue())
	assert.Nil(t, Missing().StorageValue())
	assert.Equal(t, []Day{{Date: "2024-01-01"}}, Structured([]Day{{Date: "2024-01-01"}}).StorageValue())
}
