package rules

import "github.com/ckasturi/sift/internal/model"

// DefaultRules returns the built-in rule set. The keyword and pattern lists
// were collected from labeled SMS template exports and grew by accretion;
// keep additions appended to the relevant list rather than reordering.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category:        model.CategoryTransactional,
			Weight:          5,
			ConfidenceBoost: 18,
			Primary: []string{
				"OTP", "One Time Password", "One-Time Password", "verification code",
				"verify", "verification", "authenticate", "authentication", "otp for",
				"your otp", "this otp", "the otp", "otp is", "enter otp",
				"PIN", "password", "secure code", "security code", "access code",
				"login", "log in", "sign in", "signin", "log into", "sign into",
				"transaction", "payment", "debit", "credit", "debited", "credited",
				"withdraw", "withdrawal", "deposit", "balance", "account balance",
				"fund transfer", "transfer", "NEFT", "RTGS", "IMPS", "UPI",
				"bank", "banking", "ATM", "card", "debit card", "credit card",
				"card ending", "account ending", "card number",
				"authorize", "authorization", "confirm", "confirmation",
				"approved", "approval", "declined", "failed", "successful",
				"statement", "chequebook", "cheque book", "passbook",
				"account opening", "account activation", "card activation",
				"mobile verification", "number verification", "KYC verification",
				"mandate", "auto debit", "standing instruction",
				"internet banking", "mobile banking", "whatsapp banking",
				"net banking", "online banking", "digital banking",
				"transaction alert", "payment failed", "transaction declined",
				"loan journey", "loan limit", "account number", "authorized transaction",
				"security alert", "account blocked", "card expired", "temporarily blocked due to",
				"otp confirmation", "transaction successful", "transaction completed",
				"account updated", "profile updated", "payment alert", "payment confirmation",
				"payment processed", "payment received", "transaction notification",
				"debit notification", "credit notification",
				"balance notification", "fund credited", "fund debited", "amount credited",
				"amount debited", "payment debited", "payment credited", "transaction ref",
				"transaction reference", "payment reference", "reference number",
				"EMI plan", "credit cancelled", "transaction amount", "current outstanding",
				"processing fee", "loan amount", "credit limit", "card xx", "get loan",
				"biz power", "regalia credit", "passcode", "receipt", "receipt number",
				"premium amount", "policy renewal", "renewal due", "make a payment",
				"authorization code",
			},
			Secondary: []string{
				"valid for", "expires", "expiry", "minutes", "mins", "seconds",
				"do not share", "don't share", "never share", "not share",
				"with anyone", "to anyone", "confidential", "secret",
				"customer", "registered", "activated", "account", "service",
				"security reasons", "protect", "safe", "secure",
				"transaction in process", "payment received", "balance updated", "account activity",
				"debit alert", "credit alert", "transaction notification", "statement available",
				"dear parent", "against invoice", "has been received", "thank you",
			},
			Patterns: []string{
				`\b\d{4,6}\b.*(?:OTP|otp|code|PIN|pin|password)`,
				`(?:OTP|otp|code|PIN|pin|password).*\b\d{4,6}\b`,
				`(?:OTP|otp|verification).*(?:valid|expires).*(?:\d+.*(?:minutes?|mins?|seconds?))`,
				`(?:not share|don'?t share|never share).*(?:OTP|otp|code|PIN|pin|password)`,
				`transaction.*(?:successful|failed|declined|approved|completed)`,
				`(?:debit|credit).*(?:card|account).*(?:ending|number|xxxx)`,
				`(?:login|sign in).*(?:OTP|otp|code|password)`,
				`balance.*(?:INR|Rs|₹|\$|\d+)`,
				`card ending.*\d{4}`,
				`account.*\d{6,}`,
				`\{#var#\} is your passcode`,
				`passcode.*valid for \{#var#\} minutes`,
				`one time password`,
				`authorization code`,
				`(?:authorize|confirm).*(?:transaction|payment|request)`,
				`<#>.*(?:OTP|otp|verification)`,
				`#.*(?:OTP|otp|verification)`,
				`\{#var#\}.*(?:is|for).*(?:OTP|otp|verification|login|password)`,
				`transaction\s+(alert|failed|completed|declined|successful)`,
				`loan\s+(journey|limit|application)`,
				`account\s+(blocked|expired|updated|verification)`,
				`otp\s+(confirmation|verified)`,
				`balance\s+(updated|available|alert)`,
				`payment\s+(alert|confirmation|processed|received|failed|successful)`,
				`(?:amount|fund|payment).*(?:credited|debited)`,
				`(?:transaction|payment).*(?:reference|ref|id).*\w+`,
				`EMI\s+plan.*(?:cancelled|transaction)`,
				`credit.*(?:cancelled|card|limit)`,
				`(?:hdfc|sfb).*(?:bank|credit)`,
				`(?:invoice|receipt)\s+(?:no|number).*\d+`,
				`premium\s+amount.*Rs`,
				`passcode.*(?:for|getting|policy)`,
				`kindly\s+make\s+a\s+payment`,
			},
		},
		{
			Category:        model.CategoryServiceImplicit,
			Weight:          3,
			ConfidenceBoost: 12,
			Primary: []string{
				"application", "application received", "application processed",
				"application approved", "application rejected", "application status",
				"has been", "have been", "status", "update", "updated",
				"renewal", "renewed", "renewal due", "renewal reminder",
				"reminder", "notification", "alert", "notice", "intimation",
				"confirmed", "booked", "scheduled", "rescheduled", "cancelled",
				"delivered", "shipped", "dispatched", "pickup", "delivery",
				"out for delivery", "delivered successfully",
				"installation", "maintenance", "service request", "complaint",
				"resolved", "activated", "deactivated", "suspended", "blocked",
				"expired", "expiry", "due date", "bill generated", "invoice generated",
				"statement generated", "usage alert", "limit exceeded",
				"quota exceeded", "threshold crossed",
				"policy", "policy issued", "policy renewal", "premium due",
				"claim", "claim processed", "maturity", "benefit", "settlement",
				"policy document", "certificate", "coverage",
				"pradhan mantri", "bima yojana", "jeevan jyoti", "suraksha bima",
				"ayushman bharat", "jan aushadhi", "government scheme",
				"dear customer", "dear sir", "dear madam", "greetings",
				"thank you", "regards", "team", "visit branch",
				"customer service", "helpdesk", "support team",
				"account statement", "monthly statement", "account summary",
				"service activated", "service deactivated", "plan changed",
				"tariff change", "rate revision", "terms updated",
				"quality check", "cannot processed", "cannot be processed",
				"complaint filed", "issue resolved", "plan renewed",
				"account suspended", "case closed",
				"feedback received", "maintenance scheduled",
				"rate us", "rating", "feedback", "experience", "interaction",
				"melento", "click", "document", "documents", "kindly", "kotak",
				"life", "arbitration", "reference letter", "overdue", "unpaid amount",
				"credit bureaus", "credit score", "legal notice",
				"missed call", "urgent attention", "IT integration", "services",
				"temporary", "discontinued", "outstanding amount", "payment due",
				"dispute", "avoid", "authorized", "representative", "request",
				"unable to reach", "medical assessment", "provide", "preferred date",
				"absent", "query", "complaint regarding",
				"declined", "duplicate complaint",
				"gold loan service", "event will take place", "presence", "cooperation",
				"annual general meeting", "attendance", "symptom generated",
				"equipment", "resolved remotely", "assistance", "contact",
				"please note", "change in", "fund", "effective", "website",
				"breakdown", "observability", "down alert", "up alert",
				"downtime", "system", "monitoring", "base receipt", "created successfully",
				"zepto gift card", "balance", "support", "help",
				"billing cycle", "unchanged", "ignore", "technical glitch",
				"regret", "inconvenience", "disbursed", "emi amount", "starting",
				"payable", "download", "fair practice code",
				"information booklet", "active", "bus ticket",
				"thanks for visiting", "host again", "Service Update", "Service Update!",
				"for queries related to", "customer care", "EMI card", "personal loan",
				"health insurance", "card protection plan", "thank you for choosing",
				"queries in account opening", "call us on", "token of appreciation",
				"complimentary", "Thank you for shopping",
				"next purchase", "Next time purchase", "Validity",
				"invoice no", "invoice number", "power supply errors",
				"warehouse service provider",
				"thanks for registering", "trials are on", "pachaiyappas college ground",
				"ott subscription", "monthly subscription", "special offer", "is now active",
				"signing up", "We will get in touch with you soon", "Current Account application",
				"Call out",
			},
			Secondary: []string{
				"your order", "your booking", "your service", "your plan",
				"your policy", "your account", "your application", "your request",
				"appointment", "visit", "technician", "executive", "representative",
				"agent", "branch", "office", "contact", "call", "details",
				"information", "update", "change", "modification",
				"customer support", "visit branch", "agent assigned", "appointment scheduled",
				"details updated", "plan changed", "rate revision", "helpdesk",
				"would love", "hear about", "recent", "please rate", "apply",
				"please contact", "queries", "related to", "voucher value",
				"regards", "verify",
			},
			Patterns: []string{
				`(?:order|booking|service|plan|policy).*(?:confirmed|scheduled|updated|renewed)`,
				`(?:bill|invoice|statement).*(?:generated|available|due|ready)`,
				`(?:installation|maintenance|visit).*(?:scheduled|completed|pending)`,
				`(?:renewal|payment).*(?:due|reminder|scheduled)`,
				`(?:application|request).*(?:received|processed|approved|rejected)`,
				`(?:dear customer|dear sir|dear madam).*(?:your|has been)`,
				`usage.*(?:alert|limit|quota|exceeded|threshold)`,
				`policy.*(?:issued|renewal|maturity|due|expiry)`,
				`ott monthly subscription`,
				`special offer`,
				`is now active`,
				`visit.*(?:branch|office|website|portal)`,
				`thanks for registering`,
				`trials are on`,
				`\bcollege ground\b`,
				`base receipt ending \d+`,
				`created successfully`,
				`power supply errors`,
				`prompt action`,
				`verify the elevator`,
				`revert to toc`,
				`account.*(?:statement|summary|balance|activated|closed)`,
				`service.*(?:activated|deactivated|suspended|restored)`,
				`application\s+(received|approved|rejected|processed)`,
				`maintenance\s+(scheduled|completed)`,
				`complaint\s+(filed|resolved)`,
				`Service\s*Update[!]?`,
				`thank you for choosing`,
				`queries in account opening`,
				`call us on`,
				`sip instalment.*reversed due to`,
				`consecutive reversals`,
				`contact us at \d{10}`,
				`thank you for shopping`,
				`token of appreciation`,
				`complimentary [^ ]+`,
				`(promo code|voucher value|validity|T&C)`,
				`For\s+queries\s+related\s+to`,
				`(EMI|Personal\s+Loan|Health\s+Insurance|Card\s+Protection\s+Plan)`,
				`please\s+contact\s+[A-Za-z\s]+Customer\s+Care`,
				`we would love.*(?:hear|feedback|rate)`,
				`(?:arbitration|legal|overdue|settlement).*(?:reference|notice|letter)`,
				`missed.*call.*(?:urgent|attention)`,
				`IT.*integration.*services.*(?:not available|unavailable)`,
				`(?:annual|general|meeting).*(?:attendance|request|presence)`,
				`(?:symptom|alert).*(?:generated|resolved|equipment)`,
				`(?:solarwinds|observability).*(?:down|up|alert)`,
				`(?:system|equipment).*(?:down|up|since|again)`,
				`(?:change in|effective|please note).*(?:fund|rate|ter)`,
				`(?:zepto|gift card).*(?:balance|updated|payment|successful)`,
				`(?:billing cycle|technical glitch|ignore|regret)`,
				`(?:loan|disbursed|emi).*(?:amount|starting|payable)`,
			},
		},
		{
			Category:        model.CategoryServiceExplicit,
			Weight:          4,
			ConfidenceBoost: 16,
			Primary: []string{
				"offer", "offers", "special offer", "mega offer", "best offer", "live offer",
				"discount", "discounts", "promotion", "promotional", "sale", "sales",
				"deal", "deals", "mega deal", "best deal", "flash sale", "super sale",
				"great deal", "amazing offer", "incredible offer", "unbeatable offer",
				"cashback", "get cashback", "earn cashback", "instant cashback",
				"reward", "rewards", "earn rewards", "bonus", "bonus points",
				"savings", "save upto", "save up to", "earn upto", "earn up to",
				"flat discount", "flat cashback", "extra cashback",
				"prize", "prizes", "win", "winner", "contest", "competition",
				"lucky draw", "scratch card", "lottery", "bumper prize",
				"lucky winner", "congratulations", "you won", "you win",
				"voucher", "vouchers", "coupon", "coupons", "gift voucher",
				"shopping voucher", "brand voucher", "discount coupon",
				"free", "complimentary", "gift", "gifts", "surprise gift",
				"free gift", "free delivery", "free installation", "free trial",
				"no charges", "zero cost", "at no cost",
				"limited time", "limited period", "limited offer", "hurry", "hurry up",
				"grab now", "shop now", "buy now", "book now", "apply now",
				"grab", "order now", "call now", "visit now", "download now",
				"don't miss", "last chance", "ending soon", "expires today",
				"only today", "today only", "while stocks last",
				"exclusive", "exclusive offer", "special invitation", "vip offer",
				"premium", "elite", "select customers", "chosen customers",
				"get up to", "register now", "join now", "subscribe now",
				"explore", "explore new", "discover", "experience",
				"enjoy", "exciting", "amazing", "incredible", "unbelievable",
				"biggest", "largest", "best", "top", "number one",
				"pre-book", "pre-order", "advance booking", "early bird",
				"easy emi", "zero down payment", "no cost emi", "instant approval",
				"pre-approved", "eligible for", "eligible", "qualify for", "approved loan",
				"loan offer", "credit offer", "finance offer", "card offer",
				"instant loan", "quick loan", "personal loan offer",
				"festival", "celebration", "festive offer", "holiday special",
				"independence day", "republic day", "diwali", "dussehra",
				"holi", "new year", "christmas", "birthday special",
				"anniversary", "monsoon offer", "summer sale",
				"new launch", "newly launched", "introducing", "presenting",
				"unveiling", "coming soon", "now available", "just arrived",
				"latest", "newest", "brand new", "fresh arrival",
				"click here", "tap here", "visit website", "download app",
				"call us", "contact us", "reach us", "get in touch",
				"find out more", "learn more", "know more", "details inside",
				"bogo", "buy one get one", "buy 1 get 1", "early access", "sitewide",
				"flash", "till stock lasts", "valid till", "avail", "boost",
				"Get expert", "Get your guide here", "check out",
				"limited time offer", "exclusive deal", "special promotion",
				"free shipping", "monsoon sale",
				"festival offer", "voucher code",
				"prize draw", "win big",
				"anniversary offer",
				"cash coupon", "complimentary trial",
				"credit card offer", "loan approval",
				"seasonal discount", "seasonal sale", "celebrate",
				"register today", "subscribe today",
				"grab yours",
				"experience the best", "own", "redefined", "thrilled", "on board",
				"register for", "loyalty program", "activate", "unlock", "trading",
				"buying power", "trade smart", "derivative privileges", "futures",
				"options", "inaugural offer", "discount up to", "flat off",
				"international holidays", "send money abroad", "zero charges",
				"curated", "mtf picks", "margin calculator", "just one step left",
				"unlock f&o trading", "new address", "limited period",
				"get discount", "many more", "smartbuy", "infinia", "diners club",
				"regalia", "biz black", "biz power", "business regalia",
				"wide-leg denim", "iconic fit", "styled your way", "in-store",
				"online", "heartfelt greetings", "gold loan", "additional",
				"special opportunity", "higher loan amount", "immediately contact",
				"utilize this special offer", "Gear up now", "hunting",
				"grab iphone", "hdfc bank regalia",
				"alert 50% off", "processing fee", "get loan up to", "lowest rates",
				"attractive lending", "level up your", "ottplay experience",
				"tired of delivery", "amazon prime", "annual membership",
				"enjoy & free", "pvr movie", "lifetime free", "kotak credit",
				"jaha manage", "gaya falgu", "collection shuru", "with your", "on track",
				"order now on", "install our", "don't let", "real-time view",
				"karein", "click report",
				"inquiry via", "dialhire", "budget", "saal baad", "aya hai", "absa yog",
				"thalu pakah", "anvasya", "surya grahan", "hari", "shivjayanti",
				"house call", "night", "seva", "sevasetu", "level up",
				"install our app", "smoother streaming",
				"personalised picks", "asia cup", "team ottplay",
				"complete your vkyc", "hero fincorp", "loan is waiting", "delays hold",
				"finish application",
				"medicine refill", "refill date", "refill today", "has passed",
				"stay on track", "treatment", "zeno health",
				"walk-in drive", "mega walk-in drive", "customer service",
				"days working", "shifts", "rotational off", "salary up to",
				"walk in at", "mention", "resume", "contact",
				"selected with care", "special emi plans", "repay stress-free",
				"saddle up", "royal enfield", "down payment", "emi starting",
				"calculate now", "continental gt", "shotgun",
				"withdraw funds", "savings account", "use them whenever",
				"get funds now", "indusind bank",
				"we chose you", "second loan", "unlocked", "hdfc bank credit card",
				"don't miss out", "low as", "at just", "free pvr", "movie tickets",
				"working shifts", "salary", "employment", "job opportunity",
				"biggest sale", "sale of the year", "wastage charges",
				"making charges", "showrooms", "visit your nearest",
				"jewellery sale", "enjoy flat", "across all", "showroom today",
				"t&c apply", "puja essence", "subho mahalaya", "get upto",
				"off on gold", "off on dia", "off on diamond", "mc", "value",
				"senco", "joyalukkas", "gold jewelry", "diamond jewelry",
				"festival sale", "navratri", "diwali sale",
				"mahalaya offer", "gold discount", "jewelry discount",
				"keep playing", "start playing", "play now", "win more",
				"multiply your winnings", "gaming account", "bonus credited",
				"unlock rewards", "mega contest",
				"dream11", "mpl", "rummy", "poker", "casino",
				"health checkup", "package", "full-body", "visit", "call",
				"Enroll Now", "awaits", "Happy Birthday!", "Happy Birthday", "Wishing",
			},
			Secondary: []string{
				"marketing", "advertise", "advertisement", "campaign", "brand",
				"product", "launch", "new arrival", "trending", "popular",
				"bestseller", "featured", "recommended", "celebrate", "join us",
				"be part of", "community", "family", "membership",
				"marketing campaign", "membership benefits",
				"reward points", "bonus offer", "special invitation",
				"family and friends", "community exclusive",
				"purchase", "buying", "shopping", "collection",
				"low as", "at just", "get up to", "free pvr", "movie tickets",
				"sale", "discount", "offer", "showroom", "visit", "today",
				"limited time", "festival", "celebration", "special",
			},
			Patterns: []string{
				`(?:get|claim|avail|grab|win|earn).*(?:discount|cashback|offer|voucher|reward)`,
				`(?:upto|up to|\d+%).*(?:off|discount|cashback|savings)`,
				`(?:limited time|hurry|grab now|shop now|buy now|apply now)`,
				`(?:free|complimentary).*(?:gift|voucher|delivery|installation|trial)`,
				`(?:win|winner|prize).*(?:contest|draw|competition|lottery)`,
				`(?:sale|offer).*(?:ends|valid till|limited period|expires)`,
				`(?:easy emi|zero down payment|no cost emi|instant approval)`,
				`(?:visit|shop|buy|book|apply|call|download).*(?:now|today|immediately)`,
				`(?:flat|upto|up to).*(?:\d+%|rs\.?\s*\d+|₹\s*\d+)`,
				`(?:save|earn|get).*(?:upto|up to).*(?:\d+%|rs\.?\s*\d+|₹\s*\d+)`,
				`(?:offer|deal|discount).*(?:live|active|available|valid)`,
				`(?:pre-approved|eligible|qualify).*(?:loan|credit|offer)`,
				`(?:festival|festive|celebration|special).*(?:offer|sale|discount)`,
				`buy\s+one\s+get\s+one`,
				`(?:biggest|jewellery|jewelry).*(?:sale|discount|off)`,
				`(?:flat|upto).*(?:\d+%|off).*(?:wastage|making|charges)`,
				`(?:visit|showroom|showrooms).*(?:today|nearest)`,
				`(?:puja|mahalaya|navratri|dussehra|festival).*(?:essence|offer|sale)`,
				`(?:gold|diamond|dia).*(?:off|discount|mc|value)`,
				`(?:joyalukkas|senco).*(?:sale|offer)`,
				`t&c.*apply`,
				`bogo`,
				`\bhealth checkup package\b`,
				`diagnostic centre`,
				`call \d{10}`,
				`we\s+chose\s+you[^!]*!\s+a\s+second\s+loan`,
				`is unlocked on your`,
				`early access`,
				`sitewide`,
				`till stock lasts`,
				`(?:Rs\.?\s?\d+[*]?\s?off|save\s?\d+%?|discount|offer|deal(s)?|free\s?\d*|cashback|voucher|coupon|BOGO|flat\s?\d+)`,
				`(?:shop(ping)?|buy|order|deal(s)?|essentials|mobile(s)?|laptop(s)?|instamart|electronics|fashion|grocery|appliance(s)?)`,
				`(?:valid\s?till\s?\d{1,2}\w{3,9}'?\d{2,4}|limited\s?time|today\s?only|expires|expiry|hurry|exclusive|last\s?day|don't\s?miss)`,
				`(?:credit\s?card|debit\s?card|AU\s?Bank|bank\s?offer|EMI|no\s?cost\s?EMI|UPI\s?cashback|netbanking|prepaid\s?card)`,
				`(?:shubh\s?muhurat|festive|celebration|festival\s?offer|special\s?offer|deal\s?of\s?the\s?day|big\s?sale|mega\s?sale)`,
				`(?:buy one get one|bogo|free gift|complimentary trial)`,
				`(?:flash sale|limited time|holiday|festival|seasonal|special promotion)`,
				`(?:cashback|discount|voucher|coupon|prize|winner|lucky|bonus)`,
				`(?:register|subscribe|join).*(?:now|today)`,
				`(?:click|tap|download).*(?:now|today)`,
				`(?:experience|get|own|grab).*(?:iphone|exclusive|just|best)`,
				`(?:activate|unlock|curated|mtf|trading|buying power)`,
				`(?:new address|inaugural offer|discount up to|flat off)`,
				`(?:smartbuy|infinia|diners club|regalia|biz black)`,
				`(?:gold loan|additional|special opportunity|higher loan)`,
				`grab\s+iphone.*(?:\d+|gb).*(?:just|rs|smartbuy)`,
				`(?:hdfc|bank).*(?:regalia|biz|power|credit)`,
				`(?:alert|get).*(?:\d+%|off|loan|processing)`,
				`(?:amazon|prime|pvr|movie|tickets).*(?:free|membership)`,
				`medicine.*(?:refill|reminder)`,
				`refill.*(?:date|today|reminder)`,
				`(?:stay|track).*(?:treatment|health)`,
				`order.*(?:now|today).*(?:health|zeno)`,
				`(?:level up|install|complete).*(?:experience|app|vkyc)`,
				`(?:hero|loan).*(?:fincorp|waiting|application)`,
				`inquiry.*via.*(?:dial|hire|budget)`,
				`(?:inauguration|launch|event).*(?:take place|scheduled|invite)`,
				`(?:walk-in|mega).*(?:drive|customer service|shifts)`,
				`(?:salary|days working|rotational off).*(?:up to|shifts)`,
				`(?:selected|special emi|repay|stress-free)`,
				`(?:saddle up|royal enfield|down payment|emi starting)`,
				`(?:calculate|continental|shotgun).*(?:now|gt|650)`,
				`(?:withdraw|funds|savings|get funds)`,
				`(?:chose you|second loan|unlocked|credit card)`,
				`(?:deposited|credited|added).*(?:amount|rs|₹).*(?:keep|start|continue).*(?:play|gaming|win)`,
				`(?:congratulations|congrats).*(?:bonus|amount).*(?:credited|added).*(?:play|game)`,
				`(?:balance|wallet).*(?:active|updated).*(?:play|win|multiply)`,
				`(?:use|utilize).*(?:amount|money|balance).*(?:play|win|multiply)`,
			},
		},
	}
}
