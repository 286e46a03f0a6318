package words

import "github.com/typefight/typefighter-go/internal/model"

// embeddedPool is the built-in prompt pool, served when storage has no
// prompts loaded for a difficulty. Keeps rooms playable with no backing
// store configured.
var embeddedPool = map[model.Difficulty][]model.Word{
	model.DifficultyEasy: {
		{ID: "1", Text: "みかん", Reading: "みかん", Romaji: "mikan", Difficulty: model.DifficultyEasy, CharCount: 4},
		{ID: "2", Text: "わかやま", Reading: "わかやま", Romaji: "wakayama", Difficulty: model.DifficultyEasy, CharCount: 5},
		{ID: "3", Text: "うめぼし", Reading: "うめぼし", Romaji: "umeboshi", Difficulty: model.DifficultyEasy, CharCount: 5},
		{ID: "4", Text: "ぱんだ", Reading: "ぱんだ", Romaji: "panda", Difficulty: model.DifficultyEasy, CharCount: 4},
		{ID: "5", Text: "らーめん", Reading: "らーめん", Romaji: "ra-men", Difficulty: model.DifficultyEasy, CharCount: 5},
		{ID: "6", Text: "おんせん", Reading: "おんせん", Romaji: "onsen", Difficulty: model.DifficultyEasy, CharCount: 5},
		{ID: "7", Text: "かつお", Reading: "かつお", Romaji: "katuo", Difficulty: model.DifficultyEasy, CharCount: 4},
		{ID: "8", Text: "しらす", Reading: "しらす", Romaji: "shirasu", Difficulty: model.DifficultyEasy, CharCount: 4},
		{ID: "21", Text: "たいよう", Reading: "たいよう", Romaji: "taiyou", Difficulty: model.DifficultyEasy, CharCount: 5},
		{ID: "22", Text: "なつまつり", Reading: "なつまつり", Romaji: "natsumatsuri", Difficulty: model.DifficultyEasy, CharCount: 6},
		{ID: "24", Text: "さくら", Reading: "さくら", Romaji: "sakura", Difficulty: model.DifficultyEasy, CharCount: 4},
		{ID: "25", Text: "ゆうひ", Reading: "ゆうひ", Romaji: "yuuhi", Difficulty: model.DifficultyEasy, CharCount: 4},
	},
	model.DifficultyNormal: {
		{ID: "9", Text: "和歌山ラーメン", Reading: "わかやまらーめん", Romaji: "wakayamara-men", Difficulty: model.DifficultyNormal, CharCount: 8},
		{ID: "10", Text: "パンダの赤ちゃん", Reading: "ぱんだのあかちゃん", Romaji: "pandanoakachan", Difficulty: model.DifficultyNormal, CharCount: 9},
		{ID: "11", Text: "有田みかんジュース", Reading: "ありたみかんじゅーす", Romaji: "aritamikanjyu-su", Difficulty: model.DifficultyNormal, CharCount: 10},
		{ID: "12", Text: "南紀白浜温泉", Reading: "なんきしらはまおんせん", Romaji: "nankishirahamaonsen", Difficulty: model.DifficultyNormal, CharCount: 8},
		{ID: "13", Text: "熊野古道を歩く", Reading: "くまのこどうをあるく", Romaji: "kumanokodouoaruku", Difficulty: model.DifficultyNormal, CharCount: 8},
		{ID: "14", Text: "紀州梅干しの名産地", Reading: "きしゅううめぼしのめいさんち", Romaji: "kishuumeboshinomeisanchi", Difficulty: model.DifficultyNormal, CharCount: 11},
		{ID: "30", Text: "潮風が香る港町", Reading: "しおかぜがかおるみなとまち", Romaji: "shiokazegakaoruminatomachi", Difficulty: model.DifficultyNormal, CharCount: 11},
		{ID: "34", Text: "温泉街の湯けむり", Reading: "おんせんがいのゆけむり", Romaji: "onsengainoyukemuri", Difficulty: model.DifficultyNormal, CharCount: 10},
	},
	model.DifficultyHard: {
		{ID: "16", Text: "夏休みの自由研究で夜空の色を記録した", Reading: "なつやすみのじゆうけんきゅうでよぞらのいろをきろくした", Romaji: "natsuyasuminojiyuukenkyuudeyozoranoirowokirokushita", Difficulty: model.DifficultyHard, CharCount: 24},
		{ID: "17", Text: "文化祭の準備で教室に大きな看板を立てた", Reading: "ぶんかさいのじゅんびできょうしつにおおきなかんばんをたてた", Romaji: "bunkasainojunbidekyoushitsuniookinanbanwotateta", Difficulty: model.DifficultyHard, CharCount: 24},
		{ID: "18", Text: "新しい部活の勧誘チラシを公園で配った", Reading: "あたらしいぶかつのかんゆうちらしをこうえんでくばった", Romaji: "atarashiibukatsunokanyuuchirashiokouendekubatta", Difficulty: model.DifficultyHard, CharCount: 24},
		{ID: "19", Text: "夜の商店街で友だちと屋台を手伝っていた", Reading: "よるのしょうてんがいでともだちとやたいをてつだっていた", Romaji: "yorunoshootenngaidetomodachitoyataiwotetsudatteita", Difficulty: model.DifficultyHard, CharCount: 24},
		{ID: "20", Text: "図書室の窓越しに優しい夕暮れの光が差した", Reading: "としょしつのまどごしにやさしいゆうぐれのひかりがさした", Romaji: "toshoshitsunomadogoshiniyasashiiyuugurenohikarigasashita", Difficulty: model.DifficultyHard, CharCount: 25},
		{ID: "42", Text: "理科の実験で色の変わる溶液を慎重に混ぜた", Reading: "りかのじっけんでいろのかわるようえきをしんちょうにまぜた", Romaji: "rikanojikkendeironokawaruyouekiwoshinchounimazeta", Difficulty: model.DifficultyHard, CharCount: 24},
	},
	model.DifficultyScore: {
		{ID: "101", Text: "夏祭りの広場で子どもたちが笑う", Reading: "なつまつりのひろばでこどもたちがわらう", Romaji: "natsumatsurinohirobadekodomotachigawarau", Difficulty: model.DifficultyScore, CharCount: 19},
		{ID: "102", Text: "朝焼けの港で漁船が静かに揺れる", Reading: "あさやけのみなとでぎょせんがしずかにゆれる", Romaji: "asayakenominatodegyosengashizukaniyureru", Difficulty: model.DifficultyScore, CharCount: 21},
		{ID: "103", Text: "図書室の窓辺で雨音を聞きながら読む", Reading: "としょしつのまどべであまおとをききながらよむ", Romaji: "toshoshitsunomadobedeamaotowokikinarayomu", Difficulty: model.DifficultyScore, CharCount: 22},
		{ID: "104", Text: "夕暮れの公園で犬が駆け回って遊ぶ", Reading: "ゆうぐれのこうえんでいぬがかけまわってあそぶ", Romaji: "yuugurenokouendeinugakakemawatteasobu", Difficulty: model.DifficultyScore, CharCount: 22},
		{ID: "105", Text: "放課後の音楽室でピアノと歌声が響く", Reading: "ほうかごのおんがくしつでぴあのとうたごえがひびく", Romaji: "houkagonoongakushitsudepianotoutagoegahibiku", Difficulty: model.DifficultyScore, CharCount: 24},
	},
}
