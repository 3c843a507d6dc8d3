// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/crosstab/datasets"
	"github.com/katalvlaran/crosstab/labeled"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	errNoDataset     = errors.New("no dataset given (argument, --dataset or CROSSTAB_DATASET)")
	errManyDatasets  = errors.New("more than one dataset given")
	errBadCoordinate = errors.New("coordinate must be Axis=Label")
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the bundled datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range datasets.Names() {
				info, err := datasets.Describe(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", info.Name, info.Total, info.Title)
			}
			return nil
		},
	}
}

func (a *app) describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe [dataset]",
		Short: "Print the description, axes and source of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, arr, _, err := a.resolve(args)
			if err != nil {
				return err
			}
			info, err := datasets.Describe(name)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n\n%s\n\n", info.Title, info.Description)
			for _, ax := range arr.Axes() {
				fmt.Fprintf(w, "%s: %s\n", ax.Name, strings.Join(ax.Labels, ", "))
			}
			fmt.Fprintf(w, "\nTotal: %d\nSource: %s\n", arr.Total(), info.Source)
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [dataset]",
		Short: "Print every cell of a dataset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, arr, _, err := a.resolve(args)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), arr)
			return nil
		},
	}
}

func (a *app) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [dataset] Axis=Label...",
		Short: "Print a cell, or the sub-table left by a partial coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, arr, coord, err := a.resolve(args)
			if err != nil {
				return err
			}
			return a.printSelection(cmd, arr, coord)
		},
	}
}

func (a *app) sumCmd() *cobra.Command {
	var over []string
	cmd := &cobra.Command{
		Use:   "sum [dataset] --over Axis,... [Axis=Label...]",
		Short: "Collapse axes by summation, then optionally select cells",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, arr, coord, err := a.resolve(args)
			if err != nil {
				return err
			}
			summed, err := arr.Sum(over...)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"over": over, "kept": summed.AxisNames()}).Debug("summed")
			return a.printSelection(cmd, summed, coord)
		},
	}
	cmd.Flags().StringSliceVar(&over, "over", nil, "axes to sum over")

	return cmd
}

func (a *app) marginCmd() *cobra.Command {
	var keep []string
	cmd := &cobra.Command{
		Use:   "margin [dataset] --keep Axis,...",
		Short: "Keep the given axes and sum over all others",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, arr, coord, err := a.resolve(args)
			if err != nil {
				return err
			}
			m, err := arr.Margin(keep...)
			if err != nil {
				return err
			}
			a.log.WithField("keep", m.AxisNames()).Debug("margin")
			return a.printSelection(cmd, m, coord)
		},
	}
	cmd.Flags().StringSliceVar(&keep, "keep", nil, "axes to keep")

	return cmd
}

// resolve splits args into an optional dataset name and Axis=Label pairs, and
// loads the dataset (falling back to the configured default).
func (a *app) resolve(args []string) (string, *labeled.Array, map[string]string, error) {
	var name string
	coord := make(map[string]string)
	for _, arg := range args {
		axis, label, ok := strings.Cut(arg, "=")
		if !ok {
			if name != "" {
				return "", nil, nil, errManyDatasets
			}
			name = arg
			continue
		}
		if axis == "" || label == "" {
			return "", nil, nil, fmt.Errorf("%q: %w", arg, errBadCoordinate)
		}
		coord[axis] = label
	}
	if name == "" {
		name = a.v.GetString(keyDataset)
	}
	if name == "" {
		return "", nil, nil, errNoDataset
	}

	arr, err := datasets.Lookup(name)
	if err != nil {
		return "", nil, nil, err
	}
	a.log.WithFields(logrus.Fields{"dataset": name, "coord": coord}).Debug("dataset resolved")

	return name, arr, coord, nil
}

// printSelection prints the scalar at coord when it fixes every axis, the
// sub-table otherwise.
func (a *app) printSelection(cmd *cobra.Command, arr *labeled.Array, coord map[string]string) error {
	sub, err := arr.Sel(coord)
	if err != nil {
		a.log.WithError(err).Warn("selection failed")
		return err
	}
	if sub.NDim() == 0 {
		v, err := sub.Item()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), sub)

	return nil
}
