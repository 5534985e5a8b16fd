package workertest_test

import (
	"github.com/lambda-feedback/tool-launcher/internal/execution/worker"
	"github.com/lambda-feedback/tool-launcher/internal/execution/worker/workertest"
)

var _ worker.Worker = (*workertest.MockWorker)(nil)
