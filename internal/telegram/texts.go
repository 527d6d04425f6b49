package telegram

import "fmt"

// Bilingual reply texts. Bengali is the default, users can toggle to
// English from the menu.
var texts = map[string]map[string]string{
	"welcome": {
		"bn": "স্বাগতম! নিচের মেনু থেকে একটি অপশন বেছে নিন।",
		"en": "Welcome! Pick an option from the menu below.",
	},
	"join_required": {
		"bn": "বট ব্যবহার করতে আগে আমাদের চ্যানেলে যোগ দিন, তারপর আবার /start দিন।",
		"en": "Join our channel first to use the bot, then send /start again.",
	},
	"help": {
		"bn": "🎁 Get Account দিয়ে একটি অ্যাকাউন্ট নিন। অ্যাকাউন্ট পাওয়ার পর ১০ মিনিটের মধ্যে প্রুফ স্ক্রিনশট পাঠাতে হবে, নাহলে ব্যান হবেন।",
		"en": "Use 🎁 Get Account to claim an account. After claiming you must send a proof screenshot within 10 minutes or you will be banned.",
	},
	"bot_info": {
		"bn": "এই বট চ্যানেল মেম্বারদের ফ্রি অ্যাকাউন্ট বিতরণ করে। রেফার করে পয়েন্ট আয় করুন।",
		"en": "This bot distributes free accounts to channel members. Earn points by referring friends.",
	},
	"banned": {
		"bn": "আপনি ব্যান হয়েছেন। অ্যাডমিনের সাথে যোগাযোগ করুন।",
		"en": "You are banned. Contact an admin.",
	},
	"proof_open": {
		"bn": "আপনার আগের অ্যাকাউন্টের প্রুফ এখনো বাকি। আগে স্ক্রিনশট পাঠান।",
		"en": "Your previous claim still needs a proof screenshot. Send it first.",
	},
	"none_available": {
		"bn": "এই মুহূর্তে কোনো অ্যাকাউন্ট নেই। পরে আবার চেষ্টা করুন।",
		"en": "No accounts available right now. Try again later.",
	},
	"negative_points": {
		"bn": "আপনার পয়েন্ট ঋণাত্মক। রেফার করে পয়েন্ট আয় করুন।",
		"en": "Your points balance is negative. Refer friends to earn points.",
	},
	"operational_error": {
		"bn": "একটি সমস্যা হয়েছে, পরে আবার চেষ্টা করুন।",
		"en": "Something went wrong, please try again later.",
	},
	"proof_received": {
		"bn": "✅ স্ক্রিনশট পাওয়া গেছে, ধন্যবাদ!",
		"en": "✅ Screenshot received, thank you!",
	},
	"no_pending_proof": {
		"bn": "আপনার কোনো প্রুফ বাকি নেই।",
		"en": "You have no proof pending.",
	},
}

func text(key, lang string) string {
	if byLang, ok := texts[key]; ok {
		if msg, ok := byLang[lang]; ok {
			return msg
		}
		return byLang["en"]
	}
	return key
}

func credentialText(name, secret string, lang string) string {
	if lang == "bn" {
		return fmt.Sprintf("🎁 আপনার অ্যাকাউন্ট:\n\nName: %s\nSecret: %s\n\n⚠️ এই মেসেজ ৫ মিনিট পরে মুছে যাবে। ১০ মিনিটের মধ্যে প্রুফ স্ক্রিনশট পাঠান, নাহলে অটো-ব্যান।", name, secret)
	}
	return fmt.Sprintf("🎁 Your account:\n\nName: %s\nSecret: %s\n\n⚠️ This message self-destructs in 5 minutes. Send a proof screenshot within 10 minutes or you will be auto-banned.", name, secret)
}
