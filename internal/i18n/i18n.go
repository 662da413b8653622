// Package i18n holds the two-locale message table used for user-visible text.
package i18n

var translations = map[string]map[string]string{
	"ar": {
		"loginError":         "خطأ في اسم المستخدم أو كلمة المرور",
		"permissionRequired": "عذراً، لا توجد صلاحية كافية لتعديل البيانات، يرجى مراجعة المسؤول التقني.",
		"chatError":          "عذراً، حدث خطأ أثناء التواصل مع المساعد. حاول مرة أخرى.",
		"invoiceError":       "عذراً، حدث خطأ أثناء محاولة تصدير الفاتورة.",
		"invalidStatus":      "حالة الطلب غير معروفة.",
		"invalidRequest":     "صيغة الطلب غير صحيحة.",
		"authRequired":       "يجب تسجيل الدخول أولاً.",
		"saved":              "تم الحفظ",
		"configSaved":        "تم تحديث إعدادات المساعد بنجاح.",
		"priceListSaved":     "تم تحديث قاعدة بيانات الأدوية والأسعار بنجاح.",
	},
	"en": {
		"loginError":         "Invalid username or password",
		"permissionRequired": "Access Denied: Insufficient permissions to modify data.",
		"chatError":          "Sorry, something went wrong while contacting the assistant. Please try again.",
		"invoiceError":       "Sorry, an error occurred while exporting the invoice.",
		"invalidStatus":      "Unknown order status.",
		"invalidRequest":     "Invalid request format.",
		"authRequired":       "Login required.",
		"saved":              "Saved",
		"configSaved":        "Agent settings updated successfully.",
		"priceListSaved":     "Price list database updated successfully.",
	},
}

// T returns the message for key in lang, falling back to Arabic and then to
// the key itself.
func T(lang, key string) string {
	msgs, ok := translations[lang]
	if !ok {
		msgs = translations["ar"]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	if msg, ok := translations["ar"][key]; ok {
		return msg
	}
	return key
}
