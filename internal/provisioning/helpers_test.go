package provisioning

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/imamik/nodeprep/internal/config"
)

// recordingObserver captures events and log lines for assertions.
type recordingObserver struct {
	events []Event
	lines  []string
}

var _ Observer = (*recordingObserver)(nil)

func (o *recordingObserver) Printf(format string, v ...interface{}) {
	o.lines = append(o.lines, fmt.Sprintf(format, v...))
}

func (o *recordingObserver) Event(event Event) {
	o.events = append(o.events, event)
}

func (o *recordingObserver) eventTypes() []EventType {
	types := make([]EventType, 0, len(o.events))
	for _, e := range o.events {
		types = append(types, e.Type)
	}
	return types
}

// testMocks bundles the per-collaborator mocks for overriding in tests.
type testMocks struct {
	downloader *MockDownloader
	services   *MockServiceManager
	network    *MockNetworkManager
	firewall   *MockFirewallManager
	endpoint   *MockEndpointChecker
	paths      *MockPathPersister
}

// testConfig returns a valid containerd config for tests.
func testConfig() *config.Config {
	cfg := config.New()
	cfg.KubernetesVersion = "v1.29.2"
	return cfg
}

// testContext builds a Context wired with benign mocks and a recording
// observer. Tests override individual mock fields as needed.
func testContext(t *testing.T, cfg *config.Config, env HostEnvironment) (*Context, *testMocks, *recordingObserver) {
	t.Helper()

	host, dl, svc, net, fw, ep, paths := MockCollaborators()
	observer := &recordingObserver{}

	ctx := &Context{
		Context:  context.Background(),
		Config:   cfg,
		Env:      env,
		State:    NewState(),
		Host:     host,
		Observer: observer,
		Timeouts: config.LoadTimeouts(),
	}
	mocks := &testMocks{
		downloader: dl,
		services:   svc,
		network:    net,
		firewall:   fw,
		endpoint:   ep,
		paths:      paths,
	}
	return ctx, mocks, observer
}

// tempEnvironment roots the host layout in a throwaway directory so path
// steps can exercise the real filesystem.
func tempEnvironment(t *testing.T) HostEnvironment {
	t.Helper()
	root := t.TempDir()
	return HostEnvironment{
		InstallDir:    filepath.Join(root, "k"),
		LogDir:        filepath.Join(root, "var", "log", "kubelet"),
		KubernetesDir: filepath.Join(root, "etc", "kubernetes"),
		PKIDir:        filepath.Join(root, "etc", "kubernetes", "pki"),
		KubeletRoot:   filepath.Join(root, "var", "lib", "kubelet"),
	}
}
