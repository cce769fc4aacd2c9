package provisioning

import "github.com/imamik/nodeprep/internal/config"

// FirewallStep opens the kubelet API port with an explicit check-then-create.
// The rule is best-effort: by the time this step runs the node is otherwise
// fully prepared, so a firewall failure is logged and never aborts the run.
type FirewallStep struct{}

// Name implements Step.
func (FirewallStep) Name() string { return "kubelet-firewall" }

// Provision implements Step.
func (FirewallStep) Provision(ctx *Context) error {
	created, err := Ensure(ctx, firewallRuleResource{
		firewall: ctx.Host.Firewall,
		name:     config.FirewallRuleName,
		port:     config.KubeletPort,
	})
	if err != nil {
		ctx.Observer.Printf("Warning: could not ensure firewall rule %q on port %d: %v; open the port manually if the kubelet API is unreachable",
			config.FirewallRuleName, config.KubeletPort, err)
		return nil
	}

	ctx.State.FirewallRuleCreated = created
	return nil
}
