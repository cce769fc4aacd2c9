package provisioning

// nodeBinaries are the versioned executables every worker node needs.
var nodeBinaries = []string{"kubeadm.exe", "kubelet.exe", "kube-proxy.exe"}

// BinariesStep fetches the Kubernetes node binaries for the configured
// release into the install directory. Already-present binaries are skipped;
// any transfer failure aborts the run.
type BinariesStep struct{}

// Name implements Step.
func (BinariesStep) Name() string { return "node-binaries" }

// Provision implements Step.
func (BinariesStep) Provision(ctx *Context) error {
	for _, name := range nodeBinaries {
		dest := ctx.Env.BinaryPath(name)

		fetched, err := Ensure(ctx, binaryResource{
			path:       dest,
			url:        ctx.Config.BinaryURL(name),
			downloader: ctx.Host.Downloader,
		})
		if err != nil {
			return err
		}

		if fetched {
			ctx.State.Fetched = append(ctx.State.Fetched, dest)
		}
	}
	return nil
}
