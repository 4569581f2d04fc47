// 指示: miu200521358
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/miu200521358/mu_pose_fk/pkg/adapter/io_config/poseconfig"
	"github.com/miu200521358/mu_pose_fk/pkg/adapter/io_model/posefile"
	"github.com/miu200521358/mu_pose_fk/pkg/adapter/io_model/report"
	"github.com/miu200521358/mu_pose_fk/pkg/adapter/mpresenter/messages"
	"github.com/miu200521358/mu_pose_fk/pkg/infra/base/plogging"
	"github.com/miu200521358/mu_pose_fk/pkg/shared/base/logging"
	"github.com/miu200521358/mu_pose_fk/pkg/usecase/pinteractor"
)

// options はCLI引数を保持する。
type options struct {
	armaturePath string
	posePath     string
	configPath   string
	outputPath   string
}

// main はアーマチュアレポートへのポーズ適用を実行する。
func main() {
	logging.SetDefaultLogger(plogging.NewLogger(nil))
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run はCLI処理全体を実行する。
func run(args []string, out io.Writer, errOut io.Writer) error {
	opts, err := parseOptions(args, errOut)
	if err != nil {
		return err
	}

	outputPath, err := resolveOutputPath(opts.posePath, opts.outputPath)
	if err != nil {
		return err
	}
	if err := ensureOutputDir(outputPath); err != nil {
		return err
	}

	pipeline := pinteractor.NewPosePipeline(pinteractor.PosePipelineDeps{
		SkeletonReader: report.NewReportRepository(),
		PoseReader:     posefile.NewPoseRepository(),
		PoseWriter:     posefile.NewPoseRepository(),
		ConfigReader:   poseconfig.NewConfigRepository(),
	})

	fmt.Fprintf(out, "[mu_pose_fk] "+messages.LogApplyStart+"\n", opts.armaturePath, opts.posePath)
	result, err := pipeline.Apply(pinteractor.ApplyRequest{
		ArmaturePath: opts.armaturePath,
		PosePath:     opts.posePath,
		ConfigPath:   opts.configPath,
		OutputPath:   outputPath,
	})
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(errOut, "[mu_pose_fk] "+messages.LogWarning+"\n", warning.String())
	}
	fmt.Fprintf(out, "[mu_pose_fk] "+messages.LogApplySuccess+"\n", result.OutputPath, len(result.Warnings))
	return nil
}

// parseOptions はCLI引数を解析する。
func parseOptions(args []string, errOut io.Writer) (options, error) {
	fs := flag.NewFlagSet("mu_pose_fk", flag.ContinueOnError)
	fs.SetOutput(errOut)

	armature := fs.String("armature", "", messages.LabelArmaturePathTip)
	pose := fs.String("pose", "", messages.LabelPosePathTip)
	config := fs.String("config", "", messages.LabelConfigPathTip)
	out := fs.String("out", "", messages.LabelOutPathTip)
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if *armature == "" && fs.NArg() > 0 {
		*armature = fs.Arg(0)
	}
	if *pose == "" && fs.NArg() > 1 {
		*pose = fs.Arg(1)
	}
	if *armature == "" {
		return options{}, fmt.Errorf("%s", messages.MessageArmatureRequired)
	}
	if *pose == "" {
		return options{}, fmt.Errorf("%s", messages.MessagePoseRequired)
	}

	if !strings.EqualFold(filepath.Ext(*armature), ".json") {
		return options{}, fmt.Errorf(messages.MessageArmatureExtInvalid, *armature)
	}
	if !strings.EqualFold(filepath.Ext(*pose), ".json") {
		return options{}, fmt.Errorf(messages.MessagePoseExtInvalid, *pose)
	}

	return options{
		armaturePath: *armature,
		posePath:     *pose,
		configPath:   *config,
		outputPath:   *out,
	}, nil
}

// resolveOutputPath は出力パスを解決する。
func resolveOutputPath(posePath string, outputPath string) (string, error) {
	if strings.TrimSpace(outputPath) == "" {
		dir := filepath.Dir(posePath)
		base := strings.TrimSuffix(filepath.Base(posePath), filepath.Ext(posePath))
		return filepath.Join(dir, base+"_applied.json"), nil
	}
	if !strings.EqualFold(filepath.Ext(outputPath), ".json") {
		return "", fmt.Errorf(messages.MessageOutExtInvalid, outputPath)
	}
	return outputPath, nil
}

// ensureOutputDir は出力先ディレクトリを作成する。
func ensureOutputDir(outputPath string) error {
	dir := filepath.Dir(outputPath)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: %w", messages.MessageOutputDirFailed, err)
	}
	return nil
}
