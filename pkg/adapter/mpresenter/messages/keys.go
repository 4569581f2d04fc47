// 指示: miu200521358
// Package messages はCLI表示に使うメッセージキーを提供する。
package messages

// メッセージキー一覧。
const (
	LabelArmaturePathTip = "アーマチュアレポートJSONパス"
	LabelPosePathTip     = "ポーズJSONパス"
	LabelConfigPathTip   = "設定YAMLパス (省略時は既定設定)"
	LabelOutPathTip      = "出力JSONパス (省略時はポーズ名から導出)"

	MessageArmatureRequired   = "アーマチュアレポートJSONを指定してください (-armature)"
	MessagePoseRequired       = "ポーズJSONを指定してください (-pose)"
	MessageArmatureExtInvalid = "アーマチュア入力拡張子が .json ではありません: %s"
	MessagePoseExtInvalid     = "ポーズ入力拡張子が .json ではありません: %s"
	MessageOutExtInvalid      = "出力拡張子が .json ではありません: %s"
	MessageOutputDirFailed    = "出力先ディレクトリの作成に失敗しました"

	LogApplyStart   = "適用開始: armature=%s pose=%s"
	LogApplySuccess = "適用完了: %s (警告 %d 件)"
	LogWarning      = "警告 %s"
)
