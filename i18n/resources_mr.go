package i18n

var mr = map[string]string{
	"nav.home":         "मुख्यपृष्ठ",
	"nav.about":        "आमच्याबद्दल",
	"nav.services":     "सेवा",
	"nav.book":         "अपॉइंटमेंट बुक करा",
	"nav.blog":         "राशिफळ",
	"nav.testimonials": "प्रशंसापत्रे",
	"nav.contact":      "संपर्क",

	"site.name":    "कवच ज्योतिष केंद्र",
	"site.tagline": "आध्यात्मिक मार्गदर्शन आणि ज्योतिषीय ज्ञान",

	"hero.title":       "कवच ज्योतिष केंद्रात आपले स्वागत आहे",
	"hero.subtitle":    "प्राचीन ज्ञान आणि आधुनिक अंतर्दृष्टीच्या माध्यमातून आपले भाग्य शोधा",
	"hero.description": "आमच्या प्रमाणित ज्योतिष तज्ञांकडून वैयक्तिक ज्योतिषीय मार्गदर्शन, कुंडली विश्लेषण, वास्तू सल्ला आणि आध्यात्मिक उपचाराचा अनुभव घ्या।",
	"hero.cta1":        "सल्लामसलत बुक करा",
	"hero.cta2":        "तुमचे राशिफळ जाणून घ्या",

	"about.title":    "कवच ज्योतिष केंद्राबद्दल",
	"about.subtitle": "दोन दशकांहून अधिक काळ प्राचीन ज्ञानाला आधुनिक समजुतीशी जोडणे",

	"services.title":    "आमच्या पवित्र सेवा",
	"services.subtitle": "तुमच्या अनोख्या प्रवासासाठी सर्वसमावेशक आध्यात्मिक आणि ज्योतिषीय मार्गदर्शन",

	"services.kundli.title":            "कुंडली विश्लेषण",
	"services.kundli.description":      "जीवनातील आव्हानांसाठी तपशीलवार भविष्यवाणी आणि उपायांसह संपूर्ण जन्म कुंडली विश्लेषण।",
	"services.kundli.price":            "₹1,500",
	"services.gemstone.title":          "रत्न सल्ला",
	"services.gemstone.description":    "तुमच्या ग्रहांच्या स्थिती आणि गरजांवर आधारित वैयक्तिक रत्न शिफारसी।",
	"services.gemstone.price":          "₹1,200",
	"services.vastu.title":             "वास्तु शास्त्र",
	"services.vastu.description":       "प्राचीन स्थापत्य ज्ञानाने तुमच्या राहण्या आणि कामाच्या जागांमध्ये सुसंवाद निर्माण करा।",
	"services.vastu.price":             "₹2,000",
	"services.kavach.title":            "कवच आणि संरक्षण",
	"services.kavach.description":      "आध्यात्मिक संरक्षण आणि समृद्धीसाठी पवित्र संरक्षणात्मक ताबीज आणि मंत्र।",
	"services.kavach.price":            "₹800",
	"services.horoscope.title":         "दैनिक राशिफळ",
	"services.horoscope.description":   "वैयक्तिक दैनिक, साप्ताहिक आणि मासिक राशिफळ वाचन आणि मार्गदर्शन।",
	"services.horoscope.price":         "₹500",
	"services.matchmaking.title":       "विवाह जुळणी",
	"services.matchmaking.description": "सुसंवादी नातेसंबंध आणि विवाहासाठी सर्वसमावेशक सुसंगतता विश्लेषण।",
	"services.matchmaking.price":       "₹1,800",

	"booking.title":    "तुमची सल्लामसलत बुक करा",
	"booking.subtitle": "आध्यात्मिक स्पष्टता आणि मार्गदर्शनाच्या दिशेने पहिले पाऊल टाका",
	"booking.success":  "धन्यवाद! तुमची बुकिंग विनंती प्राप्त झाली आहे.",

	"form.nameLabel":          "पूर्ण नाव *",
	"form.namePlaceholder":    "तुमचे पूर्ण नाव टाका",
	"form.whatsappLabel":      "व्हाट्सअॅप नंबर *",
	"form.whatsappPlaceholder": "+91 XXXXX XXXXX",
	"form.emailLabel":         "ईमेल पत्ता",
	"form.emailPlaceholder":   "your.email@example.com",
	"form.dobLabel":           "जन्म तारीख *",
	"form.timeLabel":          "जन्म वेळ",
	"form.placeLabel":         "जन्म ठिकाण",
	"form.placePlaceholder":   "शहर, राज्य, देश",
	"form.serviceLabel":       "सेवा प्रकार *",
	"form.selectService":      "एक सेवा निवडा",
	"form.messageLabel":       "अतिरिक्त संदेश",
	"form.messagePlaceholder": "काही विशिष्ट प्रश्न किंवा चिंता...",
	"form.submit":             "बुकिंग विनंती सादर करा",
	"form.note":               "आम्ही तुमच्या अपॉइंटमेंटची पुष्टी करण्यासाठी 24 तासांच्या आत संपर्क साधू.",

	"blog.title":    "दैनिक राशिफळ आणि लेख",
	"blog.subtitle": "वैश्विक उर्जा आणि आध्यात्मिक ज्ञानाशी जुळून राहा",
	"blog.viewAll":  "सर्व लेख पहा",

	"testimonials.title":    "आमचे ग्राहक काय म्हणतात",
	"testimonials.subtitle": "ज्यांचे आयुष्य आमच्या मार्गदर्शनाने बदलले आहे त्यांचे खरे अनुभव",
	"testimonials.submit":   "तुमचा अनुभव शेअर करा",
	"testimonials.success":  "धन्यवाद! मंजुरीनंतर तुमचे प्रशंसापत्र दिसेल.",

	"contact.title":            "संपर्कात रहा",
	"contact.subtitle":         "तुमचा आध्यात्मिक प्रवास सुरू करण्यास तयार आहात? आम्ही प्रत्येक पावलावर तुमचे मार्गदर्शन करण्यासाठी येथे आहोत।",
	"contact.info.title":       "संपर्क माहिती",
	"contact.address.label":    "पत्ता",
	"contact.address.value":    "123 स्पिरिच्युअल लेन, गणेश नगर\nपुणे, महाराष्ट्र 411014\nभारत",
	"contact.phone.label":      "फोन",
	"contact.phone.value":      "+91 98765 43210",
	"contact.email.label":      "ईमेल",
	"contact.email.value":      "info@kavachjyotish.com",
	"contact.whatsapp.label":   "व्हाट्सअॅप",
	"contact.whatsapp.value":   "+91 98765 43210",
	"contact.hours.label":      "सल्लामसलत वेळा",
	"contact.hours.weekdays":   "सोमवार - शुक्रवार: सकाळी 9:00 - संध्याकाळी 7:00",
	"contact.hours.saturday":   "शनिवार: सकाळी 9:00 - संध्याकाळी 5:00",
	"contact.hours.sunday":     "रविवार: सकाळी 10:00 - संध्याकाळी 4:00",
	"contact.form.title":       "आम्हाला संदेश पाठवा",
	"contact.form.nameLabel":   "तुमचे नाव *",
	"contact.form.emailLabel":  "ईमेल पत्ता *",
	"contact.form.subjectLabel": "विषय",
	"contact.form.messageLabel": "संदेश *",
	"contact.form.submit":      "संदेश पाठवा",
	"contact.success":          "धन्यवाद! आम्ही लवकरच तुमच्याशी संपर्क साधू.",

	"footer.tagline":   "तुमचा आध्यात्मिक प्रवास येथे सुरू होतो",
	"footer.admin":     "अॅडमिन पॅनेल",
	"footer.copyright": "© 2024 कवच ज्योतिष केंद्र. सर्व हक्क राखीव.",

	"admin.login.title":            "अॅडमिन लॉगिन",
	"admin.login.subtitle":         "डॅशबोर्डमध्ये प्रवेश",
	"admin.dashboard.title":        "अॅडमिन डॅशबोर्ड",
	"admin.dashboard.appointments": "अपॉइंटमेंट्स",
	"admin.dashboard.contacts":     "संपर्क संदेश",
	"admin.dashboard.blog":         "ब्लॉग पोस्ट",
	"admin.dashboard.testimonials": "प्रशंसापत्रे",
}
