package i18n

var chineseTranslations = map[string]string{
	"deck.creating":       "正在创建 Nutshell 黑客松演示文稿...",
	"deck.saved":          "✅ 演示文稿已保存至: %s",
	"deck.total_slides":   "📊 幻灯片总数: %d",
	"deck.inspect_header": "%s: 共 %d 张幻灯片",
	"deck.inspect_slide":  "第 %d 张幻灯片 (%d 个形状)",
	"deck.preview_saved":  "🖼️ 预览已生成: %s",
	"deck.loaded_custom":  "使用幻灯片描述文件: %s",
}
