package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/vectorkit/adapter/boltvec"
	"go.llib.dev/vectorkit/pkg/codeckit"
)

const (
	dbPathF  = "db-path"
	bucketF  = "bucket"
	codecF   = "codec"
	verboseF = "verbose"

	defaultBucket = "vector"
	defaultCodec  = "cbor"
)

// NewCmd makes the vecdb root command, which works with a vector of strings stored in a bolt database file.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vecdb",
		Short:         "Inspect and edit a vector stored in a bolt database",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String(dbPathF, "vector.db", "Path of the bolt database file")
	cmd.PersistentFlags().String(bucketF, defaultBucket, "Bucket that holds the vector")
	cmd.PersistentFlags().String(codecF, defaultCodec, "Element codec: cbor or json")
	cmd.PersistentFlags().Bool(verboseF, false, "Log every executed operation")

	cmd.AddCommand(
		LenCmd(), CapCmd(), GetCmd(), SetCmd(), PushCmd(), InsertCmd(), RemoveCmd(),
		SwapCmd(), ReserveCmd(), ShrinkCmd(), ClearCmd(), DumpCmd(),
	)
	return cmd
}

func LenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "len",
		Short: "Print the number of elements",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Len())
			return err
		}),
	}
}

func CapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cap",
		Short: "Print the reserved capacity",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Cap())
			return err
		}),
	}
}

func GetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <index>",
		Short: "Print the element at index",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			val, err := v.Get(index)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), val)
			return err
		}),
	}
}

func SetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <index> <value>",
		Short: "Overwrite the element at index",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return v.Set(index, args[1])
		}),
	}
}

func PushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push <value>...",
		Short: "Append values to the end",
		Args:  cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			v.Reserve(len(args))
			for _, arg := range args {
				v.Push(arg)
			}
			return nil
		}),
	}
}

func InsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <index> <value>",
		Short: "Insert a value at index, shifting the following elements",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return v.Insert(index, args[1])
		}),
	}
}

func RemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the element at index, shifting the following elements",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			return v.Remove(index)
		}),
	}
}

func SwapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swap <i> <j>",
		Short: "Exchange two elements",
		Args:  cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			i, err := parseIndex(args[0])
			if err != nil {
				return err
			}
			j, err := parseIndex(args[1])
			if err != nil {
				return err
			}
			return v.Swap(i, j)
		}),
	}
}

func ReserveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reserve <additional>",
		Short: "Reserve room for additional elements",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			v.Reserve(n)
			return nil
		}),
	}
}

func ShrinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shrink",
		Short: "Drop the reserved capacity beyond the length",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], _ []string) error {
			v.ShrinkToFit()
			return nil
		}),
	}
}

func ClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every element",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], _ []string) error {
			v.Clear()
			return nil
		}),
	}
}

func DumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every element as a table",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, v *boltvec.Vector[string], _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Index", "Value"})
			for index := 0; index < v.Len(); index++ {
				val, err := v.Get(index)
				if err != nil {
					return err
				}
				table.Append([]string{strconv.Itoa(index), val})
			}
			table.SetFooter([]string{"Len", strconv.Itoa(v.Len())})
			table.Render()
			return nil
		}),
	}
}

type action func(cmd *cobra.Command, v *boltvec.Vector[string], args []string) error

// run opens the vector for the duration of a single command.
// The sticky storage error of the vector is reported as the command's error.
func run(fn action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (rErr error) {
		dbPath, err := cmd.Flags().GetString(dbPathF)
		if err != nil {
			return err
		}
		bucket, err := cmd.Flags().GetString(bucketF)
		if err != nil {
			return err
		}
		codecName, err := cmd.Flags().GetString(codecF)
		if err != nil {
			return err
		}
		verbose, err := cmd.Flags().GetBool(verboseF)
		if err != nil {
			return err
		}
		c, err := codeckit.Lookup(codecName)
		if err != nil {
			return err
		}

		logger := &logging.Logger{Out: cmd.ErrOrStderr(), Level: logging.LevelError}
		if verbose {
			logger.Level = logging.LevelDebug
		}

		v, err := boltvec.OpenFile[string](dbPath, bucket,
			boltvec.WithCodec(c),
			boltvec.WithLogger(logger))
		if err != nil {
			return err
		}
		defer func() { rErr = errors.Join(rErr, v.Close()) }()

		if err := fn(cmd, v, args); err != nil {
			return err
		}
		if err := v.Err(); err != nil {
			return err
		}
		logger.Debug(context.Background(), "vecdb command executed",
			logging.Field("command", cmd.Name()),
			logging.Field("bucket", bucket),
			logging.Field("len", v.Len()),
			logging.Field("cap", v.Cap()))
		return nil
	}
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", arg, err)
	}
	return index, nil
}
