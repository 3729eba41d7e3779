package availability

import (
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

type Kind int

const (
	KindMissing Kind = iota
	KindRaw
	KindStructured
)

// Day is one bookable date and its start times.
type Day struct {
	Date  string   `json:"date" bson:"date"`
	Slots []string `json:"slots" bson:"slots"`
}

// Availability is a therapist's stored schedule in whichever shape it was
// written: a decoded list of days, an undecoded JSON string, or nothing.
type Availability struct {
	kind Kind
	raw  string
	days []Day
}

func Missing() Availability {
	return Availability{kind: KindMissing}
}

func Raw(s string) Availability {
	return Availability{kind: KindRaw, raw: s}
}

func Structured(days []Day) Availability {
	return Availability{kind: KindStructured, days: days}
}

func (a Availability) Kind() Kind {
	return a.kind
}

func (a Availability) RawValue() string {
	return a.raw
}

func (a Availability) Days() []Day {
	return a.days
}

// FromBSON reads the stored availability field. It never fails.
func FromBSON(value bson.RawValue) Availability {
	switch value.Type {
	case bsontype.String:
		s, _ := value.StringValueOK()
		return Raw(s)
	case bsontype.Array:
		elements, err := value.Array().Values()
		if err != nil {
			return Missing()
		}
		days := make([]Day, 0, len(elements))
		for _, element := range elements {
			doc, ok := element.DocumentOK()
			if !ok {
				continue
			}
			date, ok := doc.Lookup("date").StringValueOK()
			if !ok {
				continue
			}
			day := Day{Date: date, Slots: []string{}}
			if slots, ok := doc.Lookup("slots").ArrayOK(); ok {
				slotValues, _ := slots.Values()
				for _, slot := range slotValues {
					if s, ok := slot.StringValueOK(); ok {
						day.Slots = append(day.Slots, s)
					}
				}
			}
			days = append(days, day)
		}
		return Structured(days)
	}
	return Missing()
}

// FromJSON reads availability sent by a client. It never fails.
func FromJSON(data []byte) Availability {
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return Missing()
	}
	return FromValue(value)
}

// FromValue classifies an already decoded JSON value.
func FromValue(value interface{}) Availability {
	switch v := value.(type) {
	case string:
		return Raw(v)
	case []interface{}:
		days := make([]Day, 0, len(v))
		for _, element := range v {
			entry, ok := element.(map[string]interface{})
			if !ok {
				continue
			}
			date, ok := entry["date"].(string)
			if !ok {
				continue
			}
			day := Day{Date: date, Slots: []string{}}
			if slots, ok := entry["slots"].([]interface{}); ok {
				for _, slot := range slots {
					if s, ok := slot.(string); ok {
						day.Slots = append(day.Slots, s)
					}
				}
			}
			days = append(days, day)
		}
		return Structured(days)
	}
	return Missing()
}

// StorageValue is what gets written back to mongo. Raw strings are kept as
// strings so older documents round trip unchanged.
func (a Availability) StorageValue() interface{} {
	switch a.kind {
	case KindRaw:
		return a.raw
	case KindStructured:
		return a.days
	}
	return nil
}
