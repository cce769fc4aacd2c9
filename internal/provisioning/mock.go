package provisioning

import "context"

// Mock collaborators for tests. Each behaves benignly by default and
// delegates to its function field when set, mirroring how callers inject
// expectations per test case.

// MockDownloader is a mock implementation of Downloader.
type MockDownloader struct {
	FetchFunc func(ctx context.Context, destPath, url string) error
}

var _ Downloader = (*MockDownloader)(nil)

// Fetch mocks an artifact download.
func (m *MockDownloader) Fetch(ctx context.Context, destPath, url string) error {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, destPath, url)
	}
	return nil
}

// MockServiceManager is a mock implementation of ServiceManager.
type MockServiceManager struct {
	ExistsFunc       func(name string) (bool, error)
	RegisterFunc     func(name, exePath string, args []string, displayName string, dependencies []string) error
	RegisterSelfFunc func(ctx context.Context, exePath string, registerArgs []string) error
	StartFunc        func(ctx context.Context, name string) error
}

var _ ServiceManager = (*MockServiceManager)(nil)

// Exists mocks a service registry lookup. Defaults to not installed.
func (m *MockServiceManager) Exists(name string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(name)
	}
	return false, nil
}

// Register mocks service registration.
func (m *MockServiceManager) Register(name, exePath string, args []string, displayName string, dependencies []string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(name, exePath, args, displayName, dependencies)
	}
	return nil
}

// RegisterSelf mocks the self-registration invocation.
func (m *MockServiceManager) RegisterSelf(ctx context.Context, exePath string, registerArgs []string) error {
	if m.RegisterSelfFunc != nil {
		return m.RegisterSelfFunc(ctx, exePath, registerArgs)
	}
	return nil
}

// Start mocks starting a service.
func (m *MockServiceManager) Start(ctx context.Context, name string) error {
	if m.StartFunc != nil {
		return m.StartFunc(ctx, name)
	}
	return nil
}

// MockNetworkManager is a mock implementation of NetworkManager.
type MockNetworkManager struct {
	NetworkExistsFunc    func(ctx context.Context, name string) (bool, error)
	CreateNATNetworkFunc func(ctx context.Context, name string) error
}

var _ NetworkManager = (*MockNetworkManager)(nil)

// NetworkExists mocks a network lookup. Defaults to absent.
func (m *MockNetworkManager) NetworkExists(ctx context.Context, name string) (bool, error) {
	if m.NetworkExistsFunc != nil {
		return m.NetworkExistsFunc(ctx, name)
	}
	return false, nil
}

// CreateNATNetwork mocks network creation.
func (m *MockNetworkManager) CreateNATNetwork(ctx context.Context, name string) error {
	if m.CreateNATNetworkFunc != nil {
		return m.CreateNATNetworkFunc(ctx, name)
	}
	return nil
}

// MockFirewallManager is a mock implementation of FirewallManager.
type MockFirewallManager struct {
	RuleExistsFunc        func(ctx context.Context, name string) (bool, error)
	AddInboundTCPRuleFunc func(ctx context.Context, name string, port int) error
}

var _ FirewallManager = (*MockFirewallManager)(nil)

// RuleExists mocks a firewall rule lookup. Defaults to absent.
func (m *MockFirewallManager) RuleExists(ctx context.Context, name string) (bool, error) {
	if m.RuleExistsFunc != nil {
		return m.RuleExistsFunc(ctx, name)
	}
	return false, nil
}

// AddInboundTCPRule mocks rule creation.
func (m *MockFirewallManager) AddInboundTCPRule(ctx context.Context, name string, port int) error {
	if m.AddInboundTCPRuleFunc != nil {
		return m.AddInboundTCPRuleFunc(ctx, name, port)
	}
	return nil
}

// MockEndpointChecker is a mock implementation of EndpointChecker.
type MockEndpointChecker struct {
	PresentFunc func(ctx context.Context, pipePath string) (bool, error)
}

var _ EndpointChecker = (*MockEndpointChecker)(nil)

// Present mocks the control endpoint probe. Defaults to present.
func (m *MockEndpointChecker) Present(ctx context.Context, pipePath string) (bool, error) {
	if m.PresentFunc != nil {
		return m.PresentFunc(ctx, pipePath)
	}
	return true, nil
}

// MockPathPersister is a mock implementation of PathPersister.
type MockPathPersister struct {
	AppendSessionPathFunc  func(dir string) error
	PersistMachinePathFunc func(dir string) error
}

var _ PathPersister = (*MockPathPersister)(nil)

// AppendSessionPath mocks the session PATH update.
func (m *MockPathPersister) AppendSessionPath(dir string) error {
	if m.AppendSessionPathFunc != nil {
		return m.AppendSessionPathFunc(dir)
	}
	return nil
}

// PersistMachinePath mocks the machine PATH update.
func (m *MockPathPersister) PersistMachinePath(dir string) error {
	if m.PersistMachinePathFunc != nil {
		return m.PersistMachinePathFunc(dir)
	}
	return nil
}

// MockCollaborators returns a Collaborators wired entirely with benign mocks.
// Tests override individual fields as needed.
func MockCollaborators() (Collaborators, *MockDownloader, *MockServiceManager, *MockNetworkManager, *MockFirewallManager, *MockEndpointChecker, *MockPathPersister) {
	dl := &MockDownloader{}
	svc := &MockServiceManager{}
	net := &MockNetworkManager{}
	fw := &MockFirewallManager{}
	ep := &MockEndpointChecker{}
	paths := &MockPathPersister{}
	return Collaborators{
		Downloader: dl,
		Services:   svc,
		Network:    net,
		Firewall:   fw,
		Endpoint:   ep,
		Paths:      paths,
	}, dl, svc, net, fw, ep, paths
}
