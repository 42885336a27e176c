package i18n

var hi = map[string]string{
	"nav.home":         "मुखपृष्ठ",
	"nav.about":        "हमारे बारे में",
	"nav.services":     "सेवाएं",
	"nav.book":         "अपॉइंटमेंट बुक करें",
	"nav.blog":         "राशिफल",
	"nav.testimonials": "प्रशंसापत्र",
	"nav.contact":      "संपर्क",

	"site.name":    "कवच ज्योतिष केंद्र",
	"site.tagline": "आध्यात्मिक मार्गदर्शन और ज्योतिषीय ज्ञान",

	"hero.title":       "कवच ज्योतिष केंद्र में आपका स्वागत है",
	"hero.subtitle":    "प्राचीन ज्ञान और आधुनिक अंतर्दृष्टि के माध्यम से अपनी नियति खोजें",
	"hero.description": "हमारे प्रमाणित ज्योतिष विशेषज्ञों से व्यक्तिगत ज्योतिषीय मार्गदर्शन, कुंडली विश्लेषण, वास्तु परामर्श और आध्यात्मिक चिकित्सा का अनुभव करें।",
	"hero.cta1":        "परामर्श बुक करें",
	"hero.cta2":        "अपना राशिफल जानें",

	"about.title":    "कवच ज्योतिष केंद्र के बारे में",
	"about.subtitle": "दो दशकों से अधिक समय से प्राचीन ज्ञान को आधुनिक समझ के साथ जोड़ना",

	"services.title":    "हमारी पवित्र सेवाएं",
	"services.subtitle": "आपकी अनूठी यात्रा के लिए व्यापक आध्यात्मिक और ज्योतिषीय मार्गदर्शन",

	"services.kundli.title":            "कुंडली विश्लेषण",
	"services.kundli.description":      "जीवन की चुनौतियों के लिए विस्तृत भविष्यवाणियों और उपायों के साथ पूर्ण जन्म कुंडली विश्लेषण।",
	"services.kundli.price":            "₹1,500",
	"services.gemstone.title":          "रत्न परामर्श",
	"services.gemstone.description":    "आपकी ग्रहों की स्थिति और आवश्यकताओं के आधार पर व्यक्तिगत रत्न सिफारिशें।",
	"services.gemstone.price":          "₹1,200",
	"services.vastu.title":             "वास्तु शास्त्र",
	"services.vastu.description":       "प्राचीन स्थापत्य ज्ञान के साथ अपने रहने और काम करने के स्थानों को सामंजस्यपूर्ण बनाएं।",
	"services.vastu.price":             "₹2,000",
	"services.kavach.title":            "कवच और सुरक्षा",
	"services.kavach.description":      "आध्यात्मिक सुरक्षा और समृद्धि के लिए पवित्र सुरक्षात्मक ताबीज और मंत्र।",
	"services.kavach.price":            "₹800",
	"services.horoscope.title":         "दैनिक राशिफल",
	"services.horoscope.description":   "व्यक्तिगत दैनिक, साप्ताहिक और मासिक राशिफल पठन और मार्गदर्शन।",
	"services.horoscope.price":         "₹500",
	"services.matchmaking.title":       "विवाह मिलान",
	"services.matchmaking.description": "सामंजस्यपूर्ण रिश्तों और विवाह के लिए व्यापक संगतता विश्लेषण।",
	"services.matchmaking.price":       "₹1,800",

	"booking.title":    "अपना परामर्श बुक करें",
	"booking.subtitle": "आध्यात्मिक स्पष्टता और मार्गदर्शन की दिशा में पहला कदम उठाएं",
	"booking.success":  "धन्यवाद! आपका बुकिंग अनुरोध प्राप्त हो गया है।",

	"form.nameLabel":          "पूरा नाम *",
	"form.namePlaceholder":    "अपना पूरा नाम दर्ज करें",
	"form.whatsappLabel":      "व्हाट्सऐप नंबर *",
	"form.whatsappPlaceholder": "+91 XXXXX XXXXX",
	"form.emailLabel":         "ईमेल पता",
	"form.emailPlaceholder":   "your.email@example.com",
	"form.dobLabel":           "जन्म तिथि *",
	"form.timeLabel":          "जन्म समय",
	"form.placeLabel":         "जन्म स्थान",
	"form.placePlaceholder":   "शहर, राज्य, देश",
	"form.serviceLabel":       "सेवा प्रकार *",
	"form.selectService":      "एक सेवा चुनें",
	"form.messageLabel":       "अतिरिक्त संदेश",
	"form.messagePlaceholder": "कोई विशिष्ट प्रश्न या चिंताएं...",
	"form.submit":             "बुकिंग अनुरोध जमा करें",
	"form.note":               "हम आपकी अपॉइंटमेंट की पुष्टि करने के लिए 24 घंटों के भीतर संपर्क करेंगे।",

	"blog.title":    "दैनिक राशिफल और लेख",
	"blog.subtitle": "ब्रह्मांडीय ऊर्जाओं और आध्यात्मिक ज्ञान के साथ जुड़े रहें",
	"blog.viewAll":  "सभी लेख देखें",

	"testimonials.title":    "हमारे ग्राहक क्या कहते हैं",
	"testimonials.subtitle": "उन लोगों के वास्तविक अनुभव जिनका जीवन हमारे मार्गदर्शन से बदल गया है",
	"testimonials.submit":   "अपना अनुभव साझा करें",
	"testimonials.success":  "धन्यवाद! स्वीकृति के बाद आपका प्रशंसापत्र दिखाई देगा।",

	"contact.title":            "संपर्क में रहें",
	"contact.subtitle":         "अपनी आध्यात्मिक यात्रा शुरू करने के लिए तैयार हैं? हम हर कदम पर आपका मार्गदर्शन करने के लिए यहां हैं।",
	"contact.info.title":       "संपर्क जानकारी",
	"contact.address.label":    "पता",
	"contact.address.value":    "123 स्पिरिचुअल लेन, गणेश नगर\nपुणे, महाराष्ट्र 411014\nभारत",
	"contact.phone.label":      "फोन",
	"contact.phone.value":      "+91 98765 43210",
	"contact.email.label":      "ईमेल",
	"contact.email.value":      "info@kavachjyotish.com",
	"contact.whatsapp.label":   "व्हाट्सऐप",
	"contact.whatsapp.value":   "+91 98765 43210",
	"contact.hours.label":      "परामर्श समय",
	"contact.hours.weekdays":   "सोमवार - शुक्रवार: सुबह 9:00 - शाम 7:00",
	"contact.hours.saturday":   "शनिवार: सुबह 9:00 - शाम 5:00",
	"contact.hours.sunday":     "रविवार: सुबह 10:00 - शाम 4:00",
	"contact.form.title":       "हमें संदेश भेजें",
	"contact.form.nameLabel":   "आपका नाम *",
	"contact.form.emailLabel":  "ईमेल पता *",
	"contact.form.subjectLabel": "विषय",
	"contact.form.messageLabel": "संदेश *",
	"contact.form.submit":      "संदेश भेजें",
	"contact.success":          "धन्यवाद! हम जल्द ही आपसे संपर्क करेंगे।",

	"footer.tagline":   "आपकी आध्यात्मिक यात्रा यहां शुरू होती है",
	"footer.admin":     "एडमिन पैनल",
	"footer.copyright": "© 2024 कवच ज्योतिष केंद्र। सभी अधिकार सुरक्षित।",

	"admin.login.title":            "एडमिन लॉगिन",
	"admin.login.subtitle":         "डैशबोर्ड तक पहुंच",
	"admin.dashboard.title":        "एडमिन डैशबोर्ड",
	"admin.dashboard.appointments": "अपॉइंटमेंट्स",
	"admin.dashboard.contacts":     "संपर्क संदेश",
	"admin.dashboard.blog":         "ब्लॉग पोस्ट",
	"admin.dashboard.testimonials": "प्रशंसापत्र",
}
