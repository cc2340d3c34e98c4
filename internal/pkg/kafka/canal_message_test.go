package kafka

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrToUint64(t *testing.T) {
	assert.Equal(t, uint64(42), StrToUint64("42"))
	assert.Equal(t, uint64(7), StrToUint64(float64(7)))
	assert.Equal(t, uint64(0), StrToUint64("not-a-number"))
	assert.Equal(t, uint64(0), StrToUint64(nil))
}

func TestToCanalMessage(t *testing.T) {
	payload := []byte(`{
		"table": "likes",
		"type": "INSERT",
		"data": [{"user_id": "3", "post_id": "9"}]
	}`)

	msg, err := ToCanalMessage(&sarama.ConsumerMessage{Value: payload}, "likes")
	require.NoError(t, err)
	assert.Equal(t, INSERT, msg.Type)
	assert.Equal(t, uint64(3), StrToUint64(msg.Data[0]["user_id"]))
	assert.Equal(t, uint64(9), StrToUint64(msg.Data[0]["post_id"]))
}

func TestToCanalMessageWrongTable(t *testing.T) {
	payload := []byte(`{"table": "comments", "type": "INSERT", "data": [{"id": "1"}]}`)

	_, err := ToCanalMessage(&sarama.ConsumerMessage{Value: payload}, "likes")
	assert.Error(t, err)
}

func TestToCanalMessageEmptyData(t *testing.T) {
	payload := []byte(`{"table": "likes", "type": "INSERT", "data": []}`)

	_, err := ToCanalMessage(&sarama.ConsumerMessage{Value: payload}, "likes")
	assert.Error(t, err)
}
