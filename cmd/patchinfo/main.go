package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kpfaulkner/complexpatch/options"
	"github.com/kpfaulkner/complexpatch/patch"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opt := options.NewPatchInfoOptions(nil)

	cmd := &cobra.Command{
		Use:          "patchinfo",
		Short:        "Show the complex patch built from a nine-slice description",
		Long:         `patchinfo converts a classic nine-slice (border thickness, content margin and image size) into a complex patch and prints its slices, content spans, transparency grid and mesh size.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(log.InfoLevel)
			if opt.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opt.Validate(); err != nil {
				return err
			}

			switch opt.Profile {
			case options.PROFILE_CPU:
				defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
			case options.PROFILE_MEM:
				defer profile.Start(profile.MemProfileHeap, profile.ProfilePath("."), profile.Quiet).Stop()
			}

			cp, err := buildPatch(opt)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), cp)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&opt.Verbose, "verbose", "v", false, "enable verbose logging")
	flags.StringVar(&opt.Profile, "profile", options.PROFILE_NONE, "write a profile to the current directory (cpu or mem)")
	flags.Int32Var(&opt.ImageWidth, "width", 0, "image width in pixels")
	flags.Int32Var(&opt.ImageHeight, "height", 0, "image height in pixels")
	flags.UintSliceVar(&opt.NineSlice, "nine-slice", opt.NineSlice, "nine-slice border as left,top,right,bottom")
	flags.UintSliceVar(&opt.ContentMargin, "content-margin", opt.ContentMargin, "content margin as left,top,right,bottom")
	flags.BoolVar(&opt.MirrorX, "mirror-x", false, "mark the patch as mirrored horizontally")
	flags.BoolVar(&opt.MirrorY, "mirror-y", false, "mark the patch as mirrored vertically")
	return cmd
}

// buildPatch converts the nine-slice in opt and reapplies the requested mirror flags.
func buildPatch(opt *options.PatchInfoOptions) (*patch.ComplexPatch, error) {
	nineSlicePx, err := opt.NineSlicePx()
	if err != nil {
		return nil, err
	}
	contentMarginPx, err := opt.ContentMarginPx()
	if err != nil {
		return nil, err
	}

	log.Debugf("nine slice %s content margin %s image %s", nineSlicePx, contentMarginPx, opt.ImageSize())
	cp, err := patch.CreateExtendedTransparentComplexPatch(nineSlicePx, contentMarginPx, opt.ImageSize())
	if err != nil {
		return nil, err
	}

	flags := opt.PatchFlags()
	if flags == patch.PATCH_NONE {
		return cp, nil
	}
	log.Debugf("rebuilding patch with flags %s", flags)
	slices := cp.Slices()
	spans := cp.ContentSpans()
	return patch.CreateTransparentComplexPatchXY(slices.AsSpanX(), slices.AsSpanY(), spans.AsSpanX(), spans.AsSpanY(), flags)
}
