// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/gavinbunney/docsite/cmd/gendocs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

var klogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to the Run callback closures
func NewCommand(ctx context.Context) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "docsite",
		Short: "Generate the documentation site config",
		Long: `Generates the siteConfig consumed by the documentation site generator,
applying the overrides file on top of the built-in defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, cmd.OutOrStdout())
		},
	}
	configureFlags(cmd, vip)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())
	cmd.AddCommand(newValidateCmd(ctx, vip))
	cmd.AddCommand(newPrintCmd(vip))

	klogFlags.Do(func() { klog.InitFlags(nil) })
	AddFlags(cmd)

	return cmd
}

func newValidateCmd(ctx context.Context, vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build the site config and run the enabled checks without writing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o, err := newOptions(vip)
			if err != nil {
				return err
			}
			g := newGenerator(o, cmd.OutOrStdout())
			d, err := g.build()
			if err != nil {
				return err
			}
			if err = g.check(ctx, d); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "site config is valid")
			return nil
		},
	}
}

func newPrintCmd(vip *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "print",
		Short: "Print the site config to the standard output",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			o, err := newOptions(vip)
			if err != nil {
				return err
			}
			g := newGenerator(o, cmd.OutOrStdout())
			d, err := g.build()
			if err != nil {
				return err
			}
			return g.print(d)
		},
	}
}
