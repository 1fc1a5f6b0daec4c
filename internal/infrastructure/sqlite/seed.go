package sqlite

import "github.com/shopbot/backend/internal/domain"

// SampleProducts is the starter electronics catalog seeded into an empty database
func SampleProducts() []domain.Product {
	return []domain.Product{
		{Name: "گوشی سامسونگ Galaxy S23", Description: "گوشی پرچمدار سامسونگ با پردازنده Snapdragon 8 Gen 2، صفحه نمایش 6.1 اینچ، دوربین 50 مگاپیکسل", Price: 35000000},
		{Name: "گوشی اپل iPhone 14 Pro", Description: "آیفون پرچمدار با تراشه A16 Bionic، صفحه نمایش ProMotion 6.1 اینچ، دوربین 48 مگاپیکسل", Price: 55000000},
		{Name: "گوشی شیائومی Redmi Note 12", Description: "گوشی میان‌رده با پردازنده Snapdragon 685، صفحه نمایش 6.67 اینچ AMOLED، دوربین 50 مگاپیکسل", Price: 8500000},
		{Name: "گوشی سامسونگ Galaxy A54", Description: "گوشی میان‌رده با پردازنده Exynos 1380، صفحه نمایش 6.4 اینچ Super AMOLED", Price: 14500000},
		{Name: "گوشی اپل iPhone 13", Description: "آیفون با تراشه A15 Bionic، صفحه نمایش 6.1 اینچ، دوربین دوگانه 12 مگاپیکسل", Price: 42000000},
		{Name: "گوشی شیائومی Poco X5 Pro", Description: "گوشی گیمینگ با پردازنده Snapdragon 778G، صفحه نمایش 120Hz", Price: 9500000},
		{Name: "گوشی سامسونگ Galaxy Z Fold 5", Description: "گوشی تاشو پرچمدار با صفحه نمایش 7.6 اینچ داخلی و 6.2 اینچ خارجی", Price: 75000000},
		{Name: "گوشی اپل iPhone SE 2022", Description: "آیفون مقرون به صرفه با تراشه A15 Bionic و Touch ID", Price: 18000000},
		{Name: "گوشی شیائومی Mi 13 Pro", Description: "گوشی پرچمدار با دوربین Leica، پردازنده Snapdragon 8 Gen 2", Price: 38000000},
		{Name: "گوشی گوگل Pixel 7", Description: "گوشی با تراشه Google Tensor G2 و دوربین محاسباتی پیشرفته", Price: 28000000},
		{Name: "لپ‌تاپ Dell XPS 13", Description: "لپ‌تاپ نازک و سبک با پردازنده Intel Core i7 نسل 12، رم 16GB، SSD 512GB", Price: 45000000},
		{Name: "لپ‌تاپ MacBook Air M2", Description: "لپ‌تاپ اپل با تراشه M2، صفحه نمایش Liquid Retina 13.6 اینچ", Price: 52000000},
		{Name: "لپ‌تاپ HP Pavilion 15", Description: "لپ‌تاپ همه‌کاره با پردازنده AMD Ryzen 5، رم 8GB، SSD 256GB", Price: 18000000},
		{Name: "لپ‌تاپ Lenovo ThinkPad X1", Description: "لپ‌تاپ بیزینس با پردازنده Intel Core i7، رم 16GB، صفحه نمایش 14 اینچ", Price: 48000000},
		{Name: "لپ‌تاپ Asus ROG Strix G15", Description: "لپ‌تاپ گیمینگ با پردازنده AMD Ryzen 9، کارت گرافیک RTX 3070", Price: 65000000},
		{Name: "لپ‌تاپ MacBook Pro 14", Description: "لپ‌تاپ پرچمدار اپل با تراشه M2 Pro، صفحه نمایش Liquid Retina XDR", Price: 95000000},
		{Name: "لپ‌تاپ Acer Aspire 5", Description: "لپ‌تاپ مقرون به صرفه با پردازنده Intel Core i5 نسل 11، رم 8GB", Price: 15000000},
		{Name: "لپ‌تاپ MSI Creator Z16", Description: "لپ‌تاپ کریتور با صفحه نمایش لمسی، پردازنده Intel Core i9", Price: 85000000},
		{Name: "لپ‌تاپ Microsoft Surface Laptop 5", Description: "لپ‌تاپ با طراحی منحصر به فرد و صفحه نمایش لمسی", Price: 42000000},
		{Name: "لپ‌تاپ Razer Blade 15", Description: "لپ‌تاپ گیمینگ نازک با کارت گرافیک RTX 4070", Price: 95000000},
		{Name: "تبلت iPad Air 2022", Description: "تبلت اپل با تراشه M1، صفحه نمایش 10.9 اینچ Liquid Retina", Price: 28000000},
		{Name: "تبلت Samsung Galaxy Tab S9", Description: "تبلت اندروید پرچمدار با صفحه نمایش 11 اینچ AMOLED", Price: 32000000},
		{Name: "تبلت iPad Pro 12.9", Description: "تبلت حرفه‌ای اپل با تراشه M2، صفحه نمایش Liquid Retina XDR", Price: 58000000},
		{Name: "تبلت Samsung Galaxy Tab A8", Description: "تبلت مقرون به صرفه با صفحه نمایش 10.5 اینچ", Price: 8500000},
		{Name: "تبلت Lenovo Tab P11 Pro", Description: "تبلت اندروید با صفحه نمایش 11.5 اینچ OLED", Price: 15000000},
		{Name: "ساعت هوشمند Apple Watch Series 8", Description: "ساعت هوشمند با سنسورهای سلامتی پیشرفته، صفحه نمایش Always-On", Price: 18000000},
		{Name: "ساعت هوشمند Samsung Galaxy Watch 6", Description: "ساعت هوشمند اندروید با ردیابی سلامتی و GPS", Price: 12000000},
		{Name: "ساعت هوشمند Garmin Fenix 7", Description: "ساعت هوشمند ورزشی با GPS و نقشه توپوگرافی", Price: 25000000},
		{Name: "ساعت هوشمند Xiaomi Mi Band 8", Description: "مچ‌بند هوشمند مقرون به صرفه با ردیابی فعالیت", Price: 1200000},
		{Name: "ساعت هوشمند Huawei Watch GT 3", Description: "ساعت هوشمند با عمر باتری طولانی و طراحی کلاسیک", Price: 8500000},
		{Name: "ایرپاد Apple AirPods Pro 2", Description: "ایرپاد با حذف نویز فعال، صدای فضایی، باتری تا 6 ساعت", Price: 12000000},
		{Name: "هدفون Sony WH-1000XM5", Description: "هدفون بی‌سیم با بهترین حذف نویز، صدای Hi-Res", Price: 15000000},
		{Name: "ایرپاد Samsung Galaxy Buds 2 Pro", Description: "ایرپاد پرچمدار با حذف نویز هوشمند، صدای 360 درجه", Price: 6500000},
		{Name: "هدفون Bose QuietComfort 45", Description: "هدفون با حذف نویز برتر و راحتی بالا", Price: 14000000},
		{Name: "ایرپاد JBL Wave 200TWS", Description: "ایرپاد مقرون به صرفه با کیفیت صدای خوب", Price: 2200000},
		{Name: "هدفون Audio-Technica ATH-M50x", Description: "هدفون استودیویی حرفه‌ای با صدای دقیق", Price: 6500000},
		{Name: "دوربین Canon EOS R6 Mark II", Description: "دوربین بدون آینه فول فریم با سنسور 24 مگاپیکسل", Price: 125000000},
		{Name: "دوربین Sony Alpha A7 IV", Description: "دوربین حرفه‌ای با سنسور 33 مگاپیکسل، فیلمبرداری 4K", Price: 135000000},
		{Name: "دوربین Nikon Z6 II", Description: "دوربین بدون آینه با سنسور 24.5 مگاپیکسل", Price: 95000000},
		{Name: "دوربین Fujifilm X-T5", Description: "دوربین APS-C با سنسور 40 مگاپیکسل", Price: 78000000},
		{Name: "دوربین GoPro Hero 11", Description: "دوربین اکشن با قابلیت فیلمبرداری 5.3K", Price: 18000000},
		{Name: "دوربین DJI Osmo Action 3", Description: "دوربین اکشن با صفحه نمایش دوگانه", Price: 15000000},
		{Name: "کنسول Sony PlayStation 5", Description: "کنسول نسل نهمی با SSD فوق سریع و کنترلر DualSense", Price: 28000000},
		{Name: "کنسول Microsoft Xbox Series X", Description: "کنسول قدرتمند با پشتیبانی 4K و 120fps", Price: 25000000},
		{Name: "کنسول Nintendo Switch OLED", Description: "کنسول هیبریدی با صفحه نمایش 7 اینچ OLED", Price: 15000000},
		{Name: "کنسول Steam Deck", Description: "کنسول دستی PC گیمینگ", Price: 22000000},
		{Name: "اسپیکر JBL Charge 5", Description: "اسپیکر بلوتوث ضد آب با باتری 20 ساعته", Price: 5500000},
		{Name: "اسپیکر Sony SRS-XB43", Description: "اسپیکر قدرتمند با بیس عمیق و نورپردازی LED", Price: 7500000},
		{Name: "اسپیکر Bose SoundLink Revolve+", Description: "اسپیکر 360 درجه با صدای استریو", Price: 12000000},
		{Name: "اسپیکر Marshall Emberton II", Description: "اسپیکر با طراحی کلاسیک و صدای قدرتمند", Price: 6800000},
		{Name: "اسپیکر Amazon Echo Dot 5", Description: "اسپیکر هوشمند با دستیار صوتی Alexa", Price: 2500000},
		{Name: "مانیتور Dell UltraSharp U2723DE", Description: "مانیتور 27 اینچ 4K با پنل IPS و USB-C", Price: 22000000},
		{Name: "مانیتور LG UltraGear 27GN950", Description: "مانیتور گیمینگ 27 اینچ 4K با 144Hz", Price: 28000000},
		{Name: "مانیتور Samsung Odyssey G7", Description: "مانیتور گیمینگ منحنی 32 اینچ با 240Hz", Price: 32000000},
		{Name: "مانیتور ASUS ProArt PA278QV", Description: "مانیتور حرفه‌ای 27 اینچ برای طراحی", Price: 18000000},
		{Name: "مانیتور BenQ PD2700U", Description: "مانیتور 27 اینچ 4K برای طراحان", Price: 16000000},
		{Name: "کیبورد مکانیکال Keychron K2", Description: "کیبورد مکانیکال بی‌سیم با سوئیچ‌های Gateron", Price: 4500000},
		{Name: "کیبورد Logitech MX Keys", Description: "کیبورد بی‌سیم پرمیوم با نورپردازی هوشمند", Price: 5200000},
		{Name: "ماوس Logitech MX Master 3S", Description: "ماوس ارگونومیک بی‌سیم با دقت بالا", Price: 4200000},
		{Name: "ماوس Razer DeathAdder V3", Description: "ماوس گیمینگ با سنسور 30000 DPI", Price: 3500000},
		{Name: "کیبورد Corsair K70 RGB", Description: "کیبورد مکانیکال گیمینگ با نورپردازی RGB", Price: 6500000},
		{Name: "شارژر Anker PowerPort III", Description: "شارژر سریع 65 وات با 3 پورت USB", Price: 1800000},
		{Name: "پاوربانک Xiaomi 20000mAh", Description: "پاوربانک با ظرفیت بالا و شارژ سریع 33W", Price: 1500000},
		{Name: "پاوربانک Anker PowerCore 26800", Description: "پاوربانک قدرتمند با 3 پورت خروجی", Price: 2800000},
		{Name: "شارژر Apple MagSafe", Description: "شارژر بی‌سیم 15 وات برای آیفون", Price: 2200000},
		{Name: "شارژر Samsung 45W Super Fast", Description: "شارژر سریع سامسونگ با کابل USB-C", Price: 1200000},
		{Name: "روتر TP-Link Archer AX73", Description: "روتر WiFi 6 با سرعت تا 5400 Mbps", Price: 4500000},
		{Name: "روتر ASUS RT-AX86U", Description: "روتر گیمینگ WiFi 6 با پورت 2.5G", Price: 8500000},
		{Name: "روتر Xiaomi AX3000", Description: "روتر مقرون به صرفه با WiFi 6", Price: 1500000},
		{Name: "مش وایفای Google Nest WiFi", Description: "سیستم مش وایفای با پوشش گسترده", Price: 12000000},
		{Name: "هارد اکسترنال WD My Passport 2TB", Description: "هارد اکسترنال قابل حمل با USB 3.2", Price: 3500000},
		{Name: "SSD اکسترنال Samsung T7 1TB", Description: "SSD خارجی سریع با سرعت تا 1050 MB/s", Price: 5200000},
		{Name: "هارد اکسترنال Seagate Expansion 4TB", Description: "هارد اکسترنال با ظرفیت بالا", Price: 4800000},
		{Name: "SSD داخلی Samsung 980 PRO 1TB", Description: "SSD NVMe با سرعت بالا", Price: 4500000},
		{Name: "کابل HDMI Belkin Ultra High Speed", Description: "کابل HDMI 2.1 با پشتیبانی 8K", Price: 850000},
		{Name: "کابل USB-C Anker Powerline III", Description: "کابل USB-C با طول عمر بالا", Price: 650000},
		{Name: "هاب USB-C Anker 7-in-1", Description: "هاب چندکاره با HDMI، USB، و SD Card", Price: 2200000},
		{Name: "پایه لپ‌تاپ Rain Design mStand", Description: "پایه آلومینیومی ارگونومیک", Price: 2500000},
		{Name: "چاپگر HP LaserJet Pro M404dn", Description: "چاپگر لیزری سیاه و سفید", Price: 12000000},
		{Name: "چاپگر Canon PIXMA G6020", Description: "چاپگر جوهرافشان رنگی با مخزن", Price: 9500000},
		{Name: "چاپگر Epson EcoTank L3250", Description: "چاپگر سه‌کاره با مخزن جوهر", Price: 7500000},
		{Name: "اسکنر Fujitsu ScanSnap iX1600", Description: "اسکنر اسناد با سرعت بالا", Price: 18000000},
		{Name: "وب‌کم Logitech C920 HD Pro", Description: "وب‌کم 1080p با میکروفون استریو", Price: 3200000},
		{Name: "وب‌کم Razer Kiyo Pro", Description: "وب‌کم حرفه‌ای با سنسور بزرگ", Price: 5500000},
		{Name: "میکروفون Blue Yeti", Description: "میکروفون USB حرفه‌ای برای استریم و پادکست", Price: 6500000},
		{Name: "میکروفون HyperX QuadCast S", Description: "میکروفون استریم با نورپردازی RGB", Price: 7200000},
		{Name: "قاب محافظ Spigen Ultra Hybrid", Description: "قاب شفاف محافظ برای گوشی‌های مختلف", Price: 450000},
		{Name: "گلس محافظ صفحه Belkin ScreenForce", Description: "گلس تمپرد با ضربه‌گیر", Price: 350000},
		{Name: "پایه نگهدارنده موبایل Anker MagGo", Description: "پایه مگنتی برای آیفون", Price: 1200000},
		{Name: "رینگ لایت Neewer 18 اینچ", Description: "رینگ لایت برای عکاسی و ویدیو", Price: 2800000},
		{Name: "دستیار صوتی Amazon Echo Show 10", Description: "نمایشگر هوشمند با چرخش خودکار", Price: 12000000},
		{Name: "لامپ هوشمند Philips Hue", Description: "لامپ LED هوشمند با 16 میلیون رنگ", Price: 2200000},
		{Name: "پریز هوشمند TP-Link Kasa", Description: "پریز هوشمند با کنترل از راه دور", Price: 850000},
		{Name: "ترموستات هوشمند Nest Learning", Description: "ترموستات یادگیرنده با صرفه‌جویی انرژی", Price: 8500000},
		{Name: "اسکوتر برقی Xiaomi Mi Electric Scooter 3", Description: "اسکوتر برقی با برد 30 کیلومتر", Price: 15000000},
		{Name: "دوچرخه برقی Fiido D11", Description: "دوچرخه برقی تاشو با باتری لیتیومی", Price: 22000000},
		{Name: "عینک هوشمند Meta Ray-Ban", Description: "عینک هوشمند با دوربین و اسپیکر", Price: 18000000},
		{Name: "ربات جاروبرقی Roborock S7", Description: "ربات جاروبرقی با قابلیت دستمال زدن", Price: 18000000},
		{Name: "ربات جاروبرقی Xiaomi Mi Robot Vacuum", Description: "ربات جاروبرقی با ناوبری لیزری", Price: 8500000},
	}
}
