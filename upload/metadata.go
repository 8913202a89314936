package upload

import "daily-goals-pipeline/types"

// categoryPeopleBlogs is the YouTube "People & Blogs" category.
const categoryPeopleBlogs = "22"

type slotTemplate struct {
	title         func(formattedDate string) string
	description   string
	tags          []string
	categoryID    string
	pinnedComment string
}

// slotTemplates holds the fixed per-slot upload metadata. Titles are keyed
// by the Japanese-formatted civil date.
var slotTemplates = map[types.Slot]slotTemplate{
	types.SlotMorning: {
		title: func(date string) string {
			return "【" + date + "】おはよう！今日の目標は？🌅"
		},
		description: `今日も一日頑張ろう！

あなたの今日の目標をコメントで教えてください✨

小さな目標でもOK！
みんなで共有して、一緒に頑張りましょう！

#今日の頑張り #毎日投稿 #モチベーション`,
		tags:          []string{"今日の頑張り", "モチベーション", "目標", "毎日投稿", "頑張る"},
		categoryID:    categoryPeopleBlogs,
		pinnedComment: "今日の目標をこのコメント欄で宣言しよう！✨ 夜の動画で達成報告もお待ちしています🌙",
	},
	types.SlotNight: {
		title: func(date string) string {
			return "【" + date + "】おつかれさま！今日できたことは？🌙"
		},
		description: `今日も一日お疲れ様でした！

今日できたことをコメントで教えてください🌟

どんな小さなことでも、自分を褒めてあげよう！
みんなの頑張りを見て、明日も頑張れる！

#今日の頑張り #毎日投稿 #振り返り #お疲れ様`,
		tags:          []string{"今日の頑張り", "振り返り", "お疲れ様", "毎日投稿", "頑張った"},
		categoryID:    categoryPeopleBlogs,
		pinnedComment: "今日できたことをコメントで教えてください🌟 朝に宣言した目標の達成報告も大歓迎！",
	},
	types.SlotSummary: {
		title: func(date string) string {
			return "【" + date + "】みんなの今日の頑張り✨"
		},
		description: `今日参加してくれたみんなの頑張りをまとめました！

朝に目標を宣言して、夜に達成報告をしてくれた方々を
キャラクターでアニメーション紹介しています🎉

明日もみんなで頑張ろう！

#今日の頑張り #みんなの頑張り #コミュニティ #毎日投稿`,
		tags:          []string{"今日の頑張り", "みんなの頑張り", "コミュニティ", "まとめ", "毎日投稿"},
		categoryID:    categoryPeopleBlogs,
		pinnedComment: "紹介されたみなさん、今日もおつかれさまでした🎉 明日も朝の動画でお待ちしています！",
	},
}
