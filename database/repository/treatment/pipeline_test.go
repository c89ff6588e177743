package treatmentRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAvailabilityPipelineShape(t *testing.T) {
	pipeline := availabilityPipeline("2024-01-01")
	require.Len(t, pipeline, 3)

	lookup, ok := pipeline[0][0].Value.(bson.M)
	require.True(t, ok)
	assert.Equal(t, "bookings", lookup["from"])
	assert.Equal(t, "name", lookup["localField"])
	assert.Equal(t, "treatmentName", lookup["foreignField"])
	assert.Equal(t, "booked", lookup["as"])

	// The inner match pins bookings to the requested date.
	inner, ok := lookup["pipeline"].(bson.A)
	require.True(t, ok)
	require.Len(t, inner, 1)
	match := inner[0].(bson.M)["$match"].(bson.M)
	expr := match["$expr"].(bson.M)["$eq"].(bson.A)
	assert.Equal(t, "$appointmentDate", expr[0])
	assert.Equal(t, "2024-01-01", expr[1])

	// Final stage projects the set difference of slots and booked times.
	final, ok := pipeline[2][0].Value.(bson.M)
	require.True(t, ok)
	diff := final["slots"].(bson.M)["$setDifference"].(bson.A)
	assert.Equal(t, bson.A{"$slots", "$booked"}, diff)
}
