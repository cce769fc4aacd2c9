package provisioning

import "github.com/imamik/nodeprep/internal/config"

// NetworkStep ensures exactly one host-mode NAT network exists. The wired
// NetworkManager is runtime-specific: an HNS call for containerd, a driver
// network create call for Docker. Both converge on the same postcondition.
type NetworkStep struct{}

// Name implements Step.
func (NetworkStep) Name() string { return "host-network" }

// Provision implements Step.
func (NetworkStep) Provision(ctx *Context) error {
	created, err := Ensure(ctx, networkResource{
		network: ctx.Host.Network,
		name:    config.HostNetworkName,
	})
	if err != nil {
		return err
	}

	ctx.State.NetworkCreated = created
	return nil
}
