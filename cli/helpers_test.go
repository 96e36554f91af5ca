package cli

import (
	"context"
	"flag"
	"testing"

	"cloud.google.com/go/automl/apiv1beta1/automlpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.viam.com/test"
)

type testWriter struct {
	messages []string
}

func (tw *testWriter) Write(b []byte) (int, error) {
	tw.messages = append(tw.messages, string(b))
	return len(b), nil
}

// setup creates a cli context and a client backed by the given service
// fakes, with writers that record everything printed.
func setup(
	t *testing.T,
	automlService automlpb.AutoMlClient,
	operations longrunningpb.OperationsClient,
	cliArgs ...string,
) (*cli.Context, *automlClient, *testWriter, *testWriter) {
	t.Helper()
	out := &testWriter{}
	errOut := &testWriter{}
	testApp := NewApp(out, errOut)

	flags := flag.NewFlagSet("automl-video", flag.ContinueOnError)
	test.That(t, flags.Parse(cliArgs), test.ShouldBeNil)
	cCtx := cli.NewContext(testApp, flags, nil)
	cCtx.Context = context.Background()

	ac := &automlClient{
		c:          cCtx,
		conf:       &config{ProjectID: "my-project", Region: "us-central1"},
		automl:     automlService,
		operations: operations,
		logger:     zap.NewNop().Sugar(),
	}
	return cCtx, ac, out, errOut
}
