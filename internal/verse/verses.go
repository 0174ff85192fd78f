// Package verse holds the static motivational verse pool. Content is
// external reference data; the service only picks from it.
package verse

import (
	"math/rand"

	"github.com/nur-collective/siyam/internal/model"
)

var pool = []model.Verse{
	{
		Arabic:    "يَا أَيُّهَا الَّذِينَ آمَنُوا كُتِبَ عَلَيْكُمُ الصِّيَامُ كَمَا كُتِبَ عَلَى الَّذِينَ مِن قَبْلِكُمْ لَعَلَّكُمْ تَتَّقُونَ",
		Bengali:   "হে মুমিনগণ, তোমাদের ওপর রোজা ফরজ করা হয়েছে, যেমন ফরজ করা হয়েছিল তোমাদের পূর্ববর্তীদের ওপর; যাতে তোমরা তাকওয়া অর্জন করতে পারো।",
		English:   "O you who have believed, decreed upon you is fasting as it was decreed upon those before you that you may become righteous.",
		Reference: "Surah Al-Baqarah, 2:183",
	},
	{
		Arabic:    "شَهْرُ رَمَضَانَ الَّذِي أُنزِلَ فِيهِ الْقُرْآنُ هُدًى لِّلنَّاسِ وَبَيِّنَاتٍ مِّنَ الْهُدَىٰ وَالْفُرْقَانِ",
		Bengali:   "রমজান মাসই হলো সেই মাস, যাতে নাজিল করা হয়েছে কুরআন, যা মানুষের জন্য হেদায়েত এবং সত্যপথযাত্রীদের জন্য সুষ্পষ্ট পথনির্দেশ।",
		English:   "The month of Ramadhan [is that] in which was revealed the Qur'an, a guidance for the people and clear proofs of guidance and criterion.",
		Reference: "Surah Al-Baqarah, 2:185",
	},
	{
		Arabic:    "وَإِذَا سَأَلَكَ عِبَادِي عَنِّي فَإِنِّي قَرِيبٌ ۖ أُجِيبُ دَعْوَةَ الدَّاعِ إِذَا دَعَانِ",
		Bengali:   "আর যখন আমার বান্দারা আমার সম্পর্কে আপনাকে জিজ্ঞেস করে, তখন বলে দিন যে, নিশ্চয়ই আমি তাদের কাছেই আছি। আমি প্রার্থনাকারীর প্রার্থনা কবুল করি যখন সে আমার কাছে প্রার্থনা করে।",
		English:   "And when My servants ask you, [O Muhammad], concerning Me - indeed I am near. I respond to the invocation of the supplicant when he calls upon Me.",
		Reference: "Surah Al-Baqarah, 2:186",
	},
	{
		Arabic:    "وَتَزَوَّدُوا فَإِنَّ خَيْرَ الزَّادِ التَّقْوَىٰ",
		Bengali:   "আর তোমরা পাথেয় সংগ্রহ কর, নিশ্চয়ই শ্রেষ্ঠ পাথেয় হলো আল্লাহর ভয় (তাকওয়া)।",
		English:   "And take provisions, but indeed, the best provision is fear of Allah.",
		Reference: "Surah Al-Baqarah, 2:197",
	},
	{
		Arabic:    "إِنَّ مَعَ الْعُسْرِ يُسْرًا",
		Bengali:   "নিশ্চয়ই কষ্টের সাথেই সুখ রয়েছে।",
		English:   "Indeed, with hardship [will be] ease.",
		Reference: "Surah Al-Inshirah, 94:6",
	},
	{
		Arabic:    "لَّئِن شَكَرْتُمْ لَأَزِيدَنَّكُمْ",
		Bengali:   "যদি তোমরা কৃতজ্ঞতা স্বীকার কর, তবে আমি তোমাদেরকে আরও দেব।",
		English:   "If you are grateful, I will surely increase you [in favor].",
		Reference: "Surah Ibrahim, 14:7",
	},
	{
		Arabic:    "فَاصْبِرْ صَبْرًا جَمِيلًا",
		Bengali:   "অতএব আপনি উত্তম ধৈর্য ধারণ করুন।",
		English:   "So be patient with gracious patience.",
		Reference: "Surah Al-Ma'arij, 70:5",
	},
	{
		Arabic:    "ادْعُونِي أَسْتَجِبْ لَكُمْ",
		Bengali:   "তোমরা আমাকে ডাকো, আমি তোমাদের ডাকে সাড়া দেব।",
		English:   "Call upon Me; I will respond to you.",
		Reference: "Surah Ghafir, 40:60",
	},
	{
		Arabic:    "إِنَّ اللَّهَ مَعَ الصَّابِرِينَ",
		Bengali:   "নিশ্চয়ই আল্লাহ ধৈর্যশীলদের সাথে আছেন।",
		English:   "Indeed, Allah is with the patient.",
		Reference: "Surah Al-Baqarah, 2:153",
	},
}

// Random picks one verse from the pool.
func Random() model.Verse {
	return pool[rand.Intn(len(pool))]
}
