package handlers

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/imamik/nodeprep/internal/config"
	"github.com/imamik/nodeprep/internal/provisioning"
)

var (
	summaryColorGreen = lipgloss.Color("#22c55e")
	summaryColorBlue  = lipgloss.Color("#3b82f6")
	summaryColorDim   = lipgloss.Color("#6b7280")
	summaryColorWhite = lipgloss.Color("#f9fafb")
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorWhite)

	summarySectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(summaryColorBlue)

	summaryDimStyle = lipgloss.NewStyle().
			Foreground(summaryColorDim)

	summaryGreenStyle = lipgloss.NewStyle().
				Foreground(summaryColorGreen)
)

// printPrepareSuccess outputs the completion summary and next steps.
func printPrepareSuccess(cfg *config.Config, env provisioning.HostEnvironment, state *provisioning.State) {
	fmt.Print(renderPrepareSummary(cfg, env, state, isatty.IsTerminal(os.Stdout.Fd())))
}

// renderPrepareSummary produces the styled summary string. Styling is
// dropped when stdout is not a terminal.
func renderPrepareSummary(cfg *config.Config, env provisioning.HostEnvironment, state *provisioning.State, styled bool) string {
	title := summaryTitleStyle
	section := summarySectionStyle
	dim := summaryDimStyle
	green := summaryGreenStyle
	if !styled {
		plain := lipgloss.NewStyle()
		title, section, dim, green = plain, plain, plain, plain
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(title.Render(fmt.Sprintf("  Node prepared for Kubernetes %s", cfg.KubernetesVersion)))
	b.WriteString("\n")
	b.WriteString(dim.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n\n")

	b.WriteString(section.Render("  This run"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    Binaries fetched:    %d\n", len(state.Fetched)))
	b.WriteString(fmt.Sprintf("    Services registered: %s\n", formatList(state.RegisteredServices)))
	b.WriteString(fmt.Sprintf("    Network created:     %t\n", state.NetworkCreated))
	b.WriteString(fmt.Sprintf("    Firewall rule added: %t\n", state.FirewallRuleCreated))
	b.WriteString("\n")

	b.WriteString(section.Render("  Node state"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("    Runtime:         %s (service %q)\n", cfg.Runtime, cfg.Runtime.ServiceName()))
	b.WriteString(fmt.Sprintf("    Install dir:     %s\n", env.InstallDir))
	b.WriteString(fmt.Sprintf("    Startup script:  %s\n", env.StartupScriptPath()))
	b.WriteString(fmt.Sprintf("    Host network:    %s (NAT)\n", config.HostNetworkName))
	b.WriteString(fmt.Sprintf("    Kubelet service: %s (starts after %s)\n",
		config.KubeletServiceName, cfg.Runtime.ServiceName()))
	b.WriteString("\n")

	b.WriteString(green.Render("  Ready to join."))
	b.WriteString("\n")
	b.WriteString("  Run the join command from your control plane, e.g.:\n")
	b.WriteString(fmt.Sprintf("    %s join <api-server> --token <token> --discovery-token-ca-cert-hash <hash>\n",
		env.BinaryPath("kubeadm.exe")))
	b.WriteString("\n")

	return b.String()
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
