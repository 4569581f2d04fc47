// 指示: miu200521358
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/miu200521358/mu_pose_fk/pkg/adapter/io_config/poseconfig"
	"github.com/miu200521358/mu_pose_fk/pkg/adapter/io_model/posefile"
	"github.com/miu200521358/mu_pose_fk/pkg/adapter/io_model/report"
	"github.com/miu200521358/mu_pose_fk/pkg/domain/model"
	"github.com/miu200521358/mu_pose_fk/pkg/usecase/pinteractor"
)

const (
	batchOutputDirMode = 0o755
)

// batchConfig はバッチ適用の実行設定を表す。
type batchConfig struct {
	ArmaturePath string
	ConfigPath   string
	PoseDir      string
	OutputRoot   string
	DryRun       bool
	FailFast     bool
}

// applyEntry は1ポーズ分の適用入力情報を表す。
type applyEntry struct {
	Index      int
	SourcePath string
	PoseName   string
	CaseDir    string
	OutputPath string
}

// applyResult は1ポーズ分の適用結果を表す。
type applyResult struct {
	Entry         applyEntry
	Status        string
	Duration      time.Duration
	Err           error
	WarningCount  int
	ProgressStage string
}

// applyProgressCollector はApplyPoseの進捗イベントを収集する。
type applyProgressCollector struct {
	eventCounts map[pinteractor.ApplyProgressEventType]int
	boneMax     int
	hingeMax    int
	entryTotal  int
}

// main は検証向けのポーズ一括適用を実行する。
func main() {
	os.Exit(run())
}

// run は実行設定を解決して一括適用を実行し、終了コードを返す。
func run() int {
	config, err := parseBatchConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "設定解析に失敗しました: %v\n", err)
		return 2
	}
	posePaths, err := collectPosePaths(config.PoseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ポーズ一覧の取得に失敗しました: %v\n", err)
		return 2
	}
	entries := buildApplyEntries(config.OutputRoot, posePaths)
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "適用対象ポーズがありません")
		return 2
	}

	results, err := executeBatchApply(config, entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "バッチ適用の初期化に失敗しました: %v\n", err)
		return 2
	}
	printBatchSummary(results)

	hasFailed := false
	for _, result := range results {
		if result.Status == "failed" {
			hasFailed = true
			break
		}
	}
	if hasFailed {
		return 1
	}
	return 0
}

// parseBatchConfig はコマンドライン引数から実行設定を構築する。
func parseBatchConfig() (batchConfig, error) {
	defaultOutputRoot, err := resolveDefaultOutputRoot()
	if err != nil {
		return batchConfig{}, err
	}
	armature := flag.String("armature", "", "アーマチュアレポートJSONパス")
	configPath := flag.String("config", "", "設定YAMLパス (省略時は既定設定)")
	poseDir := flag.String("pose-dir", "", "ポーズJSONを含むディレクトリ")
	outputRoot := flag.String("output-root", defaultOutputRoot, "適用結果の出力ルートディレクトリ")
	dryRun := flag.Bool("dry-run", false, "実適用せず、入力解決と出力先計画のみ表示する")
	failFast := flag.Bool("fail-fast", false, "失敗時に即時終了する")
	flag.Parse()

	if strings.TrimSpace(*armature) == "" {
		return batchConfig{}, errors.New("armature が空です")
	}
	if strings.TrimSpace(*poseDir) == "" {
		return batchConfig{}, errors.New("pose-dir が空です")
	}
	trimmedOutputRoot := strings.TrimSpace(*outputRoot)
	if trimmedOutputRoot == "" {
		return batchConfig{}, errors.New("output-root が空です")
	}
	return batchConfig{
		ArmaturePath: filepath.Clean(strings.TrimSpace(*armature)),
		ConfigPath:   strings.TrimSpace(*configPath),
		PoseDir:      filepath.Clean(strings.TrimSpace(*poseDir)),
		OutputRoot:   filepath.Clean(trimmedOutputRoot),
		DryRun:       *dryRun,
		FailFast:     *failFast,
	}, nil
}

// resolveDefaultOutputRoot はスクリプト配置ディレクトリ基準の既定出力先を返す。
func resolveDefaultOutputRoot() (string, error) {
	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("実行ファイル位置を取得できません")
	}
	currentDir := filepath.Dir(currentFilePath)
	return filepath.Join(currentDir, "output"), nil
}

// collectPosePaths は指定ディレクトリ直下のポーズJSONを名前順で列挙する。
func collectPosePaths(poseDir string) ([]string, error) {
	dirEntries, err := os.ReadDir(poseDir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(dirEntry.Name()), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(poseDir, dirEntry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// buildApplyEntries は入力パス一覧から適用対象エントリを生成する。
func buildApplyEntries(outputRoot string, inputPaths []string) []applyEntry {
	entries := make([]applyEntry, 0, len(inputPaths))
	for i, rawPath := range inputPaths {
		poseName := resolvePoseName(rawPath)
		safePoseName := sanitizePathComponent(poseName)
		caseDirName := fmt.Sprintf("%03d_%s", i+1, safePoseName)
		caseDir := filepath.Join(outputRoot, caseDirName)
		outputPath := filepath.Join(caseDir, safePoseName+"_applied.json")
		entries = append(entries, applyEntry{
			Index:      i + 1,
			SourcePath: rawPath,
			PoseName:   poseName,
			CaseDir:    caseDir,
			OutputPath: outputPath,
		})
	}
	return entries
}

// executeBatchApply は全ポーズの適用処理を順次実行する。
func executeBatchApply(config batchConfig, entries []applyEntry) ([]applyResult, error) {
	skeleton, err := report.NewReportRepository().Load(config.ArmaturePath)
	if err != nil {
		return nil, fmt.Errorf("アーマチュアレポート読み込みに失敗しました: %w", err)
	}
	poseConfig := model.DefaultPoseConfig()
	if config.ConfigPath != "" {
		poseConfig, err = poseconfig.NewConfigRepository().Load(config.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("設定読み込みに失敗しました: %w", err)
		}
	}
	usecase, err := pinteractor.NewPoseUsecase(skeleton, poseConfig)
	if err != nil {
		return nil, fmt.Errorf("姿勢適用の初期化に失敗しました: %w", err)
	}

	results := make([]applyResult, 0, len(entries))
	total := len(entries)
	for _, entry := range entries {
		fmt.Printf("[%d/%d] 適用開始: pose=%s\n", entry.Index, total, entry.PoseName)
		result := applyPoseEntry(usecase, config, entry)
		results = append(results, result)
		switch result.Status {
		case "succeeded":
			fmt.Printf("[%d/%d] 適用成功: pose=%s output=%s warnings=%d elapsed=%s\n", entry.Index, total, entry.PoseName, entry.OutputPath, result.WarningCount, result.Duration.Round(time.Millisecond))
			if strings.TrimSpace(result.ProgressStage) != "" {
				fmt.Printf("[%d/%d] ApplyPose進捗: %s\n", entry.Index, total, result.ProgressStage)
			}
		case "dry_run":
			fmt.Printf("[%d/%d] DRY-RUN: pose=%s input=%s output=%s\n", entry.Index, total, entry.PoseName, entry.SourcePath, entry.OutputPath)
		case "skipped_missing":
			fmt.Printf("[%d/%d] 入力不足でスキップ: pose=%s input=%s reason=%v\n", entry.Index, total, entry.PoseName, entry.SourcePath, result.Err)
		default:
			fmt.Printf("[%d/%d] 適用失敗: pose=%s reason=%v\n", entry.Index, total, entry.PoseName, result.Err)
			if config.FailFast {
				return results, nil
			}
		}
	}
	return results, nil
}

// applyPoseEntry は1ポーズ分の適用を実行する。
func applyPoseEntry(usecase *pinteractor.PoseUsecase, config batchConfig, entry applyEntry) applyResult {
	result := applyResult{
		Entry:  entry,
		Status: "failed",
	}
	if _, err := os.Stat(entry.SourcePath); err != nil {
		result.Status = "skipped_missing"
		result.Err = err
		return result
	}
	if config.DryRun {
		result.Status = "dry_run"
		return result
	}
	if err := os.MkdirAll(entry.CaseDir, batchOutputDirMode); err != nil {
		result.Err = fmt.Errorf("出力ディレクトリ作成に失敗しました: %w", err)
		return result
	}

	poseRepository := posefile.NewPoseRepository()
	pose, err := poseRepository.Load(entry.SourcePath)
	if err != nil {
		result.Err = fmt.Errorf("ポーズ読み込みに失敗しました: %w", err)
		return result
	}

	startedAt := time.Now()
	progressCollector := newApplyProgressCollector()
	usecase.SetProgressReporter(progressCollector)
	buffer := model.NewPoseBuffer()
	warnings, err := usecase.ApplyPose(buffer, pose)
	if err != nil {
		result.Err = fmt.Errorf("ApplyPoseに失敗しました: %w", err)
		return result
	}
	if err := poseRepository.Save(entry.OutputPath, buffer); err != nil {
		result.Err = fmt.Errorf("保存に失敗しました: %w", err)
		return result
	}

	result.Status = "succeeded"
	result.Duration = time.Since(startedAt)
	result.WarningCount = len(warnings)
	result.ProgressStage = progressCollector.Summary()
	return result
}

// printBatchSummary は適用結果の集計を標準出力へ表示する。
func printBatchSummary(results []applyResult) {
	succeeded := 0
	failed := 0
	skipped := 0
	dryRun := 0
	for _, result := range results {
		switch result.Status {
		case "succeeded":
			succeeded++
		case "dry_run":
			dryRun++
		case "skipped_missing":
			skipped++
		default:
			failed++
		}
	}
	fmt.Printf(
		"バッチ適用サマリ: total=%d succeeded=%d failed=%d skipped_missing=%d dry_run=%d\n",
		len(results),
		succeeded,
		failed,
		skipped,
		dryRun,
	)
}

// resolvePoseName は入力パスから拡張子を除いたポーズ名を返す。
func resolvePoseName(path string) string {
	base := strings.TrimSpace(filepath.Base(path))
	ext := filepath.Ext(base)
	name := strings.TrimSpace(strings.TrimSuffix(base, ext))
	if name == "" {
		return "pose"
	}
	return name
}

// sanitizePathComponent は出力ディレクトリ/ファイル名に使えない文字を置換する。
func sanitizePathComponent(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "pose"
	}
	replaced := strings.Map(func(r rune) rune {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			return '_'
		default:
			if r < 0x20 {
				return '_'
			}
			return r
		}
	}, trimmed)
	replaced = strings.Trim(replaced, " .")
	if replaced == "" {
		return "pose"
	}
	return replaced
}

// newApplyProgressCollector はApplyPose進捗収集器を生成する。
func newApplyProgressCollector() *applyProgressCollector {
	return &applyProgressCollector{
		eventCounts: map[pinteractor.ApplyProgressEventType]int{},
	}
}

// ReportApplyProgress はApplyPoseの進捗イベントを収集する。
func (collector *applyProgressCollector) ReportApplyProgress(event pinteractor.ApplyProgressEvent) {
	if collector == nil {
		return
	}
	if collector.eventCounts == nil {
		collector.eventCounts = map[pinteractor.ApplyProgressEventType]int{}
	}
	collector.eventCounts[event.Type]++
	if event.BoneCount > collector.boneMax {
		collector.boneMax = event.BoneCount
	}
	if event.HingeCount > collector.hingeMax {
		collector.hingeMax = event.HingeCount
	}
	if event.EntryTotal > collector.entryTotal {
		collector.entryTotal = event.EntryTotal
	}
}

// Summary は収集したApplyPose進捗の要約文字列を返す。
func (collector *applyProgressCollector) Summary() string {
	if collector == nil || len(collector.eventCounts) == 0 {
		return ""
	}
	types := make([]string, 0, len(collector.eventCounts))
	for stageType := range collector.eventCounts {
		types = append(types, string(stageType))
	}
	sort.Strings(types)
	return fmt.Sprintf(
		"events=%d bones=%d hinges=%d entries=%d stages=%s",
		len(collector.eventCounts),
		collector.boneMax,
		collector.hingeMax,
		collector.entryTotal,
		strings.Join(types, ","),
	)
}
