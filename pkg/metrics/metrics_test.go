package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordTraining(t *testing.T) {
	ok := testutil.ToFloat64(TrainingTotal.WithLabelValues("test", "success"))
	failed := testutil.ToFloat64(TrainingTotal.WithLabelValues("test", "error"))

	RecordTraining("test", 200*time.Millisecond, 0.93, nil)
	assert.Equal(t, ok+1, testutil.ToFloat64(TrainingTotal.WithLabelValues("test", "success")))
	assert.Equal(t, 0.93, testutil.ToFloat64(ModelR2.WithLabelValues("test")))

	RecordTraining("test", time.Second, 0.1, errors.New("boom"))
	assert.Equal(t, failed+1, testutil.ToFloat64(TrainingTotal.WithLabelValues("test", "error")))
	assert.Equal(t, 0.93, testutil.ToFloat64(ModelR2.WithLabelValues("test")), "failed fits keep the last gauge value")
}
