// 指示: miu200521358
package pinteractor

// ApplyProgressEventType は姿勢適用の進捗イベント種別を表す。
type ApplyProgressEventType string

const (
	// ApplyProgressEventTypeResetCompleted はバッファ初期化完了イベントを表す。
	ApplyProgressEventTypeResetCompleted ApplyProgressEventType = "reset_completed"
	// ApplyProgressEventTypeHingeMapBuilt はヒンジ軸決定表構築完了イベントを表す。
	ApplyProgressEventTypeHingeMapBuilt ApplyProgressEventType = "hinge_map_built"
	// ApplyProgressEventTypeEntryWritten は姿勢1件書き込み完了イベントを表す。
	ApplyProgressEventTypeEntryWritten ApplyProgressEventType = "entry_written"
	// ApplyProgressEventTypeCommitted は適用確定イベントを表す。
	ApplyProgressEventTypeCommitted ApplyProgressEventType = "committed"
)

// ApplyProgressEvent は姿勢適用の進捗イベントを表す。
type ApplyProgressEvent struct {
	Type       ApplyProgressEventType
	BoneCount  int
	HingeCount int
	EntryTotal int
	EntryDone  int
}

// IApplyProgressReporter は姿勢適用の進捗通知契約を表す。
type IApplyProgressReporter interface {
	// ReportApplyProgress は姿勢適用進捗を通知する。
	ReportApplyProgress(event ApplyProgressEvent)
}
