package cmd

import (
	"github.com/vippsas/layeredspan/examples"
	"github.com/vippsas/layeredspan/pipeline"
)

// buildPipeline wires the demo resolvers (package examples) into a
// Pipeline, applying the config file named by --config, if any. Subject
// to the same non-goal as the rest of this CLI: it ships no domain
// resolvers of its own, only the worked examples.
func buildPipeline() (*pipeline.Pipeline, error) {
	p := pipeline.New().
		WithLineResolver(examples.ModalDescriptor).
		WithDocumentResolver(examples.NegationDescriptor)

	if configPath != "" {
		cfg, err := pipeline.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		p = p.WithConfig(cfg)
	}
	return p, nil
}
