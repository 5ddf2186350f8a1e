package intro

// hooks open every generated intro.
var hooks = [...]string{
	"Tasavvur qiling: mijoz saytingizga kiradi, 30 soniya ichida javob topa olmasa — chiqib ketadi.",
	"Ko‘pchilik bu mavzuni “oddiy” deb o‘ylaydi, lekin aynan shu joyda pul ham, obro‘ ham yutiladi.",
	"Bu mavzu haqida gap ketganda odatda ikki yo‘l bor: tez-tez yutqazish yoki jarayonni tizimga solib yutish.",
	"O‘zbekistonda onlayn savdo tez o‘sdi, lekin ko‘pchilik hali ham bir xil xatolarni takrorlaydi.",
	"Bu yerda nazariya ko‘p, ammo amaliy natija beradigan mayda detallar kam gapiriladi.",
	"Aksariyat do‘konlar aynan shu bosqichda “ko‘rinadi”, lekin “sotmaydi” — farq shu yerda.",
	"Mijozning ko‘zi bilan qarasangiz, hammasi aniq bo‘ladi: qulaylik, ishonch va tezlik.",
	"Agar siz hozir shu mavzuni tartibga solsangiz, keyingi oylar osonroq va arzonroq o‘tadi.",
}

// localBits add a line of local market context.
var localBits = [...]string{
	"Telegram/Instagram orqali kelgan trafikda bu yanada seziladi.",
	"Payme/Click ishlatadigan xaridorlar ham tezlikni yaxshi ko‘radi.",
	"Toshkentda tez yetkazib berish bo‘lsa ham, UX yomon bo‘lsa foyda bermaydi.",
	"Viloyatlardan buyurtma olayotganda ishonch signallari yanada muhim.",
	"Mobil foydalanuvchilar uchun bu mavzu ikki barobar dolzarb.",
	"SEO’dan kelgan organik trafikni “sotuvga” aylantirish aynan shu yerda hal bo‘ladi.",
	"Kichik do‘konlarda ham bu yondashuv ishlaydi — faqat tartib kerak.",
	"Raqobat kuchaygan sari, shu mayda farqlar katta natija beradi.",
}

const (
	defaultTopic    = "amaliy yo‘riqnoma va tavsiyalar"
	defaultCategory = "onlayn savdo"
)

// frame composes the three intro paragraphs from the selected fragments.
type frame struct {
	usesLocal bool
	compose   func(m Meta, hook, local string) [3]string
}

// frames are the phrasing templates, indexed by Choice.Frame.
var frames = [...]frame{
	{
		usesLocal: true,
		compose: func(m Meta, hook, local string) [3]string {
			return [3]string{
				hook,
				"\"" + m.Title + "\" mavzusi — " + orDefault(m.Description, defaultTopic) + ".\n" + local,
				"Quyida gapni cho‘zmasdan: nimadan boshlash, nimalarni tekshirish va qaysi xatolardan qochish kerakligini bosqichma-bosqich ko‘rib chiqamiz.",
			}
		},
	},
	{
		usesLocal: true,
		compose: func(m Meta, hook, local string) [3]string {
			return [3]string{
				hook,
				"Ko‘p holatda muammo \"qilish\"da emas, \"to‘g‘ri ketma-ketlik\"da bo‘ladi — ayniqsa " + orDefault(m.Category, defaultCategory) + " kontekstida.",
				"Bu maqolada " + local + " va sizga kerakli eng muhim nuqtalarni bir joyga jamladim: " + orDefault(m.Description, m.Title) + ".",
			}
		},
	},
	{
		compose: func(m Meta, hook, _ string) [3]string {
			return [3]string{
				hook,
				"Shu maqolani o‘qib chiqqandan keyin sizda aniq reja qolishi kerak: bugun nimani tuzatish, ertaga nimani sinash va bir haftada nimani o‘lchash.",
				"Boshlaymiz: " + orDefault(m.Description, m.Title),
			}
		},
	},
	{
		usesLocal: true,
		compose: func(m Meta, hook, local string) [3]string {
			return [3]string{
				hook,
				local + " Shu sabab \"" + m.Title + "\"ni faqat umumiy gaplar bilan emas, real vaziyatlarga mos tushadigan tavsiyalar bilan ochamiz.",
				"Maqola davomida siz xuddi chek-list kabi foydalanishingiz mumkin bo‘lgan amaliy qadamlarni ham olasiz.",
			}
		},
	},
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
