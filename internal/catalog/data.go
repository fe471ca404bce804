package catalog

var categories = []Category{
	{
		Key:         "engine",
		DisplayName: "🔧 引擎系統",
		Items: []Item{
			{Name: "機油", CommonNotes: []string{"0W/20", "5W/30", "5W/40", "10W/40", "全合成", "半合成", "礦物油"}},
			{Name: "機油芯", CommonNotes: []string{"原廠", "副廠", "Bosch", "Mann", "Mahle"}},
			{Name: "火星塞", CommonNotes: []string{"銥合金", "白金", "銅芯", "NGK", "Denso", "Bosch"}},
			{Name: "點火線圈", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "正時皮帶", CommonNotes: []string{"原廠", "副廠", "Gates", "Dayco"}},
			{Name: "發電機皮帶", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "水幫浦皮帶", CommonNotes: []string{"原廠", "副廠", "Gates", "Dayco"}},
			{Name: "冷卻水幫浦", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "節溫器", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "引擎腳墊", CommonNotes: []string{"原廠", "副廠", "橡膠", "液壓"}},
			{Name: "汽缸床墊片", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "油底殼放油塞墊片", CommonNotes: []string{"原廠", "副廠", "銅墊片", "鋁墊片"}},
			{Name: "汽門室墊片", CommonNotes: []string{"原廠", "副廠", "橡膠", "矽膠"}},
			{Name: "引擎機油添加劑", CommonNotes: []string{"抗磨劑", "密封劑", "清潔劑", "黏度改進劑"}},
		},
	},
	{
		Key:         "filter",
		DisplayName: "🌪️ 濾芯系統",
		Items: []Item{
			{Name: "空氣濾芯", CommonNotes: []string{"原廠", "副廠", "K&N", "Bosch", "Mann"}},
			{Name: "汽油濾芯", CommonNotes: []string{"原廠", "副廠", "Bosch", "Mann"}},
			{Name: "冷氣濾芯", CommonNotes: []string{"原廠", "副廠", "活性碳", "一般型"}},
			{Name: "冷氣活性碳濾網", CommonNotes: []string{"原廠", "副廠", "活性碳", "抗菌型", "PM2.5"}},
			{Name: "機油濾芯", CommonNotes: []string{"原廠", "副廠", "Bosch", "Mann", "Mahle"}},
		},
	},
	{
		Key:         "fluid",
		DisplayName: "🛢️ 油品系統",
		Items: []Item{
			{Name: "煞車油", CommonNotes: []string{"DOT 3", "DOT 4", "DOT 5.1"}},
			{Name: "動力方向機油", CommonNotes: []string{"ATF", "PSF", "原廠規格"}},
			{Name: "冷卻水", CommonNotes: []string{"長效型", "一般型", "原廠規格"}},
			{Name: "雨刷精", CommonNotes: []string{"濃縮型", "稀釋型", "防凍型"}},
			{Name: "差速器油", CommonNotes: []string{"75W-90", "80W-90", "85W-140"}},
			{Name: "齒輪油", CommonNotes: []string{"75W-90", "80W-90"}},
			{Name: "液壓油", CommonNotes: []string{"原廠規格"}},
		},
	},
	{
		Key:         "tire",
		DisplayName: "🛞 輪胎系統",
		Items: []Item{
			{Name: "輪胎更換", CommonNotes: []string{"195/65R15", "205/55R16", "225/45R17", "Michelin", "Bridgestone", "Continental"}},
			{Name: "輪胎平衡", CommonNotes: []string{"動態平衡", "靜態平衡"}},
			{Name: "四輪定位", CommonNotes: []string{"前輪定位", "四輪定位"}},
			{Name: "輪胎調位", CommonNotes: []string{"前後調位", "對角調位"}},
			{Name: "輪胎調胎", CommonNotes: []string{"前後調胎", "對角調胎", "十字調胎"}},
			{Name: "胎壓檢查", CommonNotes: []string{"標準胎壓", "調整胎壓"}},
			{Name: "補胎", CommonNotes: []string{"內補", "外補", "蘑菇釘"}},
		},
	},
	{
		Key:         "brake",
		DisplayName: "🛑 煞車系統",
		Items: []Item{
			{Name: "煞車來令片", CommonNotes: []string{"前輪", "後輪", "原廠", "副廠", "Brembo"}},
			{Name: "煞車碟盤", CommonNotes: []string{"前輪", "後輪", "原廠", "副廠"}},
			{Name: "煞車鼓", CommonNotes: []string{"後輪", "原廠", "副廠"}},
			{Name: "煞車來令片", CommonNotes: []string{"後輪", "原廠", "副廠"}},
			{Name: "煞車油管", CommonNotes: []string{"前輪", "後輪", "不鏽鋼"}},
			{Name: "煞車卡鉗", CommonNotes: []string{"前輪", "後輪", "原廠", "副廠"}},
			{Name: "手煞車調整", CommonNotes: []string{"調整", "更換拉線"}},
		},
	},
	{
		Key:         "electrical",
		DisplayName: "⚡ 電系統",
		Items: []Item{
			{Name: "電瓶", CommonNotes: []string{"55D23L", "75D23L", "80D26L", "免保養", "加水式"}},
			{Name: "發電機", CommonNotes: []string{"原廠", "副廠", "重建品"}},
			{Name: "啟動馬達", CommonNotes: []string{"原廠", "副廠", "重建品"}},
			{Name: "大燈燈泡", CommonNotes: []string{"H1", "H4", "H7", "LED", "HID"}},
			{Name: "方向燈燈泡", CommonNotes: []string{"一般型", "LED"}},
			{Name: "煞車燈燈泡", CommonNotes: []string{"一般型", "LED"}},
			{Name: "保險絲", CommonNotes: []string{"10A", "15A", "20A", "30A"}},
			{Name: "電瓶樁頭清潔", CommonNotes: []string{"清潔", "防鏽處理"}},
		},
	},
	{
		Key:         "suspension",
		DisplayName: "🏃 懸吊系統",
		Items: []Item{
			{Name: "避震器", CommonNotes: []string{"前輪", "後輪", "原廠", "KYB", "Bilstein"}},
			{Name: "彈簧", CommonNotes: []string{"前輪", "後輪", "原廠", "副廠"}},
			{Name: "防傾桿", CommonNotes: []string{"前", "後", "原廠", "副廠"}},
			{Name: "防傾桿連桿", CommonNotes: []string{"前", "後", "原廠", "副廠"}},
			{Name: "球接頭", CommonNotes: []string{"上", "下", "原廠", "副廠"}},
			{Name: "三角架", CommonNotes: []string{"上", "下", "原廠", "副廠"}},
			{Name: "襯套", CommonNotes: []string{"橡膠", "PU", "原廠", "副廠"}},
		},
	},
	{
		Key:         "ac",
		DisplayName: "❄️ 空調系統",
		Items: []Item{
			{Name: "冷媒補充", CommonNotes: []string{"R134a", "R1234yf"}},
			{Name: "壓縮機", CommonNotes: []string{"原廠", "副廠", "重建品"}},
			{Name: "冷凝器", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "蒸發器", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "膨脹閥", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "乾燥瓶", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "冷氣皮帶", CommonNotes: []string{"原廠", "副廠", "Gates", "Dayco"}},
			{Name: "空調管路清洗", CommonNotes: []string{"殺菌", "除臭"}},
			{Name: "空調系統除菌劑", CommonNotes: []string{"泡沫型", "噴霧型", "臭氧除菌", "銀離子除菌"}},
		},
	},
	{
		Key:         "cleaning",
		DisplayName: "🧽 清潔保養",
		Items: []Item{
			{Name: "噴油嘴清洗劑", CommonNotes: []string{"3M", "Liqui Moly", "STP"}},
			{Name: "引擎清洗劑", CommonNotes: []string{"內部清洗", "外部清洗"}},
			{Name: "冷卻系統清洗", CommonNotes: []string{"水箱清洗", "管路清洗"}},
			{Name: "節氣門清洗", CommonNotes: []string{"化油器清洗劑", "專用清洗劑"}},
			{Name: "進氣系統清洗", CommonNotes: []string{"進氣道清洗", "積碳清除"}},
			{Name: "車身打蠟", CommonNotes: []string{"固蠟", "液蠟", "鍍膜"}},
			{Name: "內裝清潔", CommonNotes: []string{"皮革保養", "塑膠保養"}},
			{Name: "引擎室清洗", CommonNotes: []string{"蒸氣清洗", "泡沫清洗"}},
			{Name: "積碳清除劑", CommonNotes: []string{"汽油添加劑", "專業清洗"}},
			{Name: "油路清洗劑", CommonNotes: []string{"汽油系統", "柴油系統"}},
			{Name: "汽油管路拔水劑", CommonNotes: []string{"異丙醇型", "乙醇型", "防凍型"}},
			{Name: "煞車系統及零件清洗劑", CommonNotes: []string{"脫脂清洗", "除鏽清洗", "專用清洗劑"}},
		},
	},
	{
		Key:         "gearbox",
		DisplayName: "⚙️ 變速箱系統",
		Items: []Item{
			{Name: "變速箱油", CommonNotes: []string{"ATF", "CVT", "手排油", "原廠規格"}},
			{Name: "變速箱濾芯", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "變速箱清洗", CommonNotes: []string{"ATF清洗", "CVT清洗"}},
			{Name: "變速箱維修", CommonNotes: []string{"大修", "小修", "調整"}},
			{Name: "自動變速箱油底殼放油塞", CommonNotes: []string{"原廠", "副廠", "磁性", "一般型"}},
			{Name: "變速箱卸油塞墊片", CommonNotes: []string{"原廠", "副廠", "銅墊片", "鋁墊片", "橡膠墊片"}},
			{Name: "變速箱油冷卻器", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "變速箱電磁閥", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "變速箱油管", CommonNotes: []string{"高壓管", "回油管", "原廠", "副廠"}},
		},
	},
	{
		Key:         "transmission",
		DisplayName: "🔩 傳動系統",
		Items: []Item{
			{Name: "離合器片", CommonNotes: []string{"原廠", "副廠", "強化型"}},
			{Name: "離合器壓板", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "離合器分離軸承", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "傳動軸", CommonNotes: []string{"前", "後", "原廠", "副廠"}},
			{Name: "萬向接頭", CommonNotes: []string{"原廠", "副廠"}},
			{Name: "CV接頭", CommonNotes: []string{"內", "外", "原廠", "副廠"}},
		},
	},
	{
		Key:         "body",
		DisplayName: "🪟 車身外觀",
		Items: []Item{
			{Name: "雨刷片", CommonNotes: []string{"前擋", "後擋", "Bosch", "Valeo"}},
			{Name: "後視鏡", CommonNotes: []string{"左", "右", "原廠", "副廠"}},
			{Name: "車窗玻璃", CommonNotes: []string{"前擋", "後擋", "側窗"}},
			{Name: "車身鈑金", CommonNotes: []string{"修復", "更換"}},
			{Name: "烤漆", CommonNotes: []string{"局部", "全車"}},
			{Name: "保險桿", CommonNotes: []string{"前", "後", "修復", "更換"}},
			{Name: "車門把手", CommonNotes: []string{"內", "外", "原廠", "副廠"}},
		},
	},
	{
		Key:         "safety",
		DisplayName: "🛡️ 安全檢查",
		Items: []Item{
			{Name: "年度驗車", CommonNotes: []string{"定期檢驗", "臨時檢驗"}},
			{Name: "排氣檢驗", CommonNotes: []string{"廢氣檢測", "噪音檢測"}},
			{Name: "安全帶檢查", CommonNotes: []string{"前座", "後座"}},
			{Name: "喇叭檢查", CommonNotes: []string{"音量檢測", "功能檢測"}},
			{Name: "燈光檢查", CommonNotes: []string{"大燈", "方向燈", "煞車燈"}},
			{Name: "後視鏡調整", CommonNotes: []string{"角度調整", "功能檢查"}},
		},
	},
	{
		Key:         "other",
		DisplayName: "🔧 其他項目",
		Items: []Item{
			{Name: "工資", CommonNotes: []string{"基本工資", "技師工資", "專業工資", "加班工資"}},
			{Name: "自訂項目", CommonNotes: []string{}},
			{Name: "緊急維修", CommonNotes: []string{"道路救援", "臨時修復"}},
			{Name: "拖吊費用", CommonNotes: []string{"一般拖吊", "事故拖吊"}},
			{Name: "檢查費用", CommonNotes: []string{"電腦診斷", "目視檢查"}},
			{Name: "其他雜項", CommonNotes: []string{}},
		},
	},
}
