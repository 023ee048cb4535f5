// Package main provides localization for the tilelapse CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Build daily pixel-art timelapse videos from merged tile snapshots.": "結合タイルのスナップショットから日次ピクセルアートタイムラプス動画を作成します。",

		// Create command
		"Build the daily timelapse MP4 from merged tile snapshots.": "結合タイルのスナップショットから日次タイムラプスMP4を作成",
		"Creating timelapse for %s...":                              "%s のタイムラプスを作成中...",
		"Interrupted, shutting down...":                             "中断されました。シャットダウンします...",

		// Progress messages
		"Collecting frames for %s":      "%s のフレームを収集中",
		"Found %d frames":               "%d 個のフレームが見つかりました",
		"Preparing %d frames":           "%d 個のフレームを準備中",
		"Prepared %d/%d frames":         "%d/%d フレームを準備しました",
		"Prepared %d frames at %dx%d":   "%d 個のフレームを %dx%d で準備しました",
		"Encoding %s (crf %d)":          "%s をエンコード中 (crf %d)",
		"Video encoded: %d bytes":       "動画をエンコードしました: %d バイト",
		"Updated %s":                    "%s を更新しました",
		"Skipping latest copy":          "latest コピーをスキップします",
		"Prepared frames kept at %s":    "準備済みフレームを %s に保持します",

		// Version command
		"Show version information": "バージョン情報を表示",
		"tilelapse version %s":     "tilelapse バージョン %s",
	})
}
