package migration

import (
	"testing"

	"github.com/Bricklabsai/theralink/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexes_ProfileEmailIsUnique(t *testing.T) {
	var found bool
	for _, group := range Indexes() {
		if group.Collection != constvars.MongoCollectionProfiles {
			continue
		}
		require.Len(t, group.Models, 1)
		model := group.Models[0]
		assert.Equal(t, bson.D{{Key: "email", Value: 1}}, model.Keys)
		require.NotNil(t, model.Options.Unique)
		assert.True(t, *model.Options.Unique)
		found = true
	}
	assert.True(t, found)
}

func TestIndexes_NamesAreDistinct(t *testing.T) {
	seen := make(map[string]bool)
	for _, group := range Indexes() {
		assert.NotEmpty(t, group.Models, group.Collection)
		for _, model := range group.Models {
			require.NotNil(t, model.Options.Name)
			name := *model.Options.Name
			assert.False(t, seen[name], name)
			seen[name] = true
		}
	}
}
