package section

const hero = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td align="center" style="padding: 0;">
            <img src="` + heroImage + `" alt="{{heroAlt}}" width="640" style="width: 100%; max-width: 640px; height: auto; display: block;" />
        </td>
    </tr>
    <tr>
        <td align="center" style="padding: 24px 24px 16px;">
            <h1 class="headline" style="font-family: {brandFont}; font-size: 32px; color: {brandPrimary}; margin: 0;">{{headline}}</h1>
        </td>
    </tr>
    <tr>
        <td align="center" style="padding: 0 24px 24px;">
            <p class="subheadline" style="font-family: {brandFont}; font-size: 18px; color: {brandSecondary}; margin: 0;">{{subheadline}}</p>
        </td>
    </tr>
    <tr>
        <td align="center" style="padding: 0 24px 32px;">
            <a href="{{ctaUrl}}" class="cta-button" style="display: inline-block; padding: 16px 32px; background-color: {brandAccent}; color: #ffffff; font-family: {brandFont}; font-size: 16px; font-weight: 600; text-decoration: none; border-radius: 8px;">{{ctaLabel}}</a>
        </td>
    </tr>
</table>
`

const subhero = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td align="center" style="padding: 24px;">
            <img src="` + productImage + `" alt="{{imageAlt}}" width="300" style="max-width: 300px; height: auto; display: block;" />
        </td>
    </tr>
    <tr>
        <td align="center" style="padding: 0 24px 16px;">
            <h2 style="font-family: {brandFont}; font-size: 24px; color: {brandPrimary}; margin: 0;">{{headline}}</h2>
        </td>
    </tr>
    <tr>
        <td align="center" style="padding: 0 24px 24px;">
            <p style="font-family: {brandFont}; font-size: 16px; color: {brandText}; margin: 0; line-height: 1.6;">{{bodyText}}</p>
        </td>
    </tr>
</table>
`

const oneColText = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="padding: 24px;">
            <h2 style="font-family: {brandFont}; font-size: 24px; color: {brandPrimary}; margin: 0 0 12px;">{{headline}}</h2>
            <p style="font-family: {brandFont}; font-size: 16px; color: {brandText}; margin: 0; line-height: 1.6;">{{bodyText}}</p>
        </td>
    </tr>
</table>
`

const storyBlock = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="padding: 24px;">
            <img src="` + heroImage + `" alt="{{storyImageAlt}}" width="592" style="width: 100%; max-width: 592px; height: auto; display: block; margin-bottom: 16px;" />
            <h2 style="font-family: {brandFont}; font-size: 24px; color: {brandPrimary}; margin: 0 0 12px;">{{headline}}</h2>
            <p style="font-family: {brandFont}; font-size: 16px; color: {brandText}; margin: 0 0 16px; line-height: 1.6;">{{bodyText}}</p>
            <a href="{{readMoreUrl}}" style="font-family: {brandFont}; font-size: 14px; color: {brandAccent}; text-decoration: underline;">Read more &rarr;</a>
        </td>
    </tr>
</table>
`

const productGrid = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="padding: 24px;">
            <table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
                <tr>
                    <td width="50%" valign="top" style="padding: 8px;" class="mobile-full">
                        <table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
                            <tr><td align="center"><img src="` + productImage + `" alt="{{product1Alt}}" width="280" style="width: 100%; max-width: 280px; height: auto; display: block;" /></td></tr>
                            <tr><td align="center" style="padding-top: 12px;"><h4 style="font-family: {brandFont}; font-size: 16px; color: {brandPrimary}; margin: 0;">{{product1Name}}</h4></td></tr>
                            <tr><td align="center" style="padding-top: 4px;"><p style="font-family: {brandFont}; font-size: 14px; color: {brandAccent}; margin: 0; font-weight: 600;">{{product1Price}}</p></td></tr>
                        </table>
                    </td>
                    <td width="50%" valign="top" style="padding: 8px;" class="mobile-full">
                        <table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
                            <tr><td align="center"><img src="` + productImage + `" alt="{{product2Alt}}" width="280" style="width: 100%; max-width: 280px; height: auto; display: block;" /></td></tr>
                            <tr><td align="center" style="padding-top: 12px;"><h4 style="font-family: {brandFont}; font-size: 16px; color: {brandPrimary}; margin: 0;">{{product2Name}}</h4></td></tr>
                            <tr><td align="center" style="padding-top: 4px;"><p style="font-family: {brandFont}; font-size: 14px; color: {brandAccent}; margin: 0; font-weight: 600;">{{product2Price}}</p></td></tr>
                        </table>
                    </td>
                </tr>
            </table>
        </td>
    </tr>
</table>
`

const testimonial = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="padding: 32px 24px; background-color: {brandSecondary}20;">
            <table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
                <tr>
                    <td align="center">
                        <img src="` + avatarImage + `" alt="" width="80" height="80" style="border-radius: 50%; display: block;" />
                    </td>
                </tr>
                <tr>
                    <td align="center" style="padding-top: 16px;">
                        <p style="font-family: {brandFont}; font-size: 18px; font-style: italic; color: {brandText}; margin: 0; line-height: 1.6;">&ldquo;{{testimonialQuote}}&rdquo;</p>
                    </td>
                </tr>
                <tr>
                    <td align="center" style="padding-top: 12px;">
                        <p style="font-family: {brandFont}; font-size: 14px; color: {brandSecondary}; margin: 0; font-weight: 600;">{{testimonialAuthor}}</p>
                    </td>
                </tr>
            </table>
        </td>
    </tr>
</table>
`

const ctaBand = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td align="center" style="padding: 32px 24px; background-color: {brandAccent};">
            <h2 style="font-family: {brandFont}; font-size: 24px; color: #ffffff; margin: 0 0 16px;">{{headline}}</h2>
            <a href="{{ctaUrl}}" style="display: inline-block; padding: 14px 28px; background-color: #ffffff; color: {brandAccent}; font-family: {brandFont}; font-size: 16px; font-weight: 600; text-decoration: none; border-radius: 8px;">{{ctaLabel}}</a>
        </td>
    </tr>
</table>
`

const headerNav = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="padding: 16px 24px; border-bottom: 1px solid {brandSecondary}20;">
            <table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
                <tr>
                    <td width="150" valign="middle">
                        <img src="` + logoImage + `" alt="{{brandName}}" width="150" height="50" style="display: block;" />
                    </td>
                    <td align="right" valign="middle" class="mobile-hide">
                        <a href="{{navLink1Url}}" style="font-family: {brandFont}; font-size: 14px; color: {brandText}; text-decoration: none; margin-left: 24px;">{{navLink1}}</a>
                        <a href="{{navLink2Url}}" style="font-family: {brandFont}; font-size: 14px; color: {brandText}; text-decoration: none; margin-left: 24px;">{{navLink2}}</a>
                        <a href="{{navLink3Url}}" style="font-family: {brandFont}; font-size: 14px; color: {brandText}; text-decoration: none; margin-left: 24px;">{{navLink3}}</a>
                    </td>
                </tr>
            </table>
        </td>
    </tr>
</table>
`

const offerBanner = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td align="center" style="padding: 12px 24px; background-color: {brandPrimary};">
            <p style="font-family: {brandFont}; font-size: 14px; color: {brandBG}; margin: 0;">{{offerText}} &bull; <a href="{{offerUrl}}" style="color: {brandAccent}; text-decoration: underline;">Shop Now</a></p>
        </td>
    </tr>
</table>
`

const socialIcons = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td align="center" style="padding: 24px;">
            <a href="{{facebookUrl}}" style="display: inline-block; margin: 0 8px;"><img src="` + iconImage + `" alt="Facebook" width="32" height="32" style="display: block;" /></a>
            <a href="{{twitterUrl}}" style="display: inline-block; margin: 0 8px;"><img src="` + iconImage + `" alt="Twitter" width="32" height="32" style="display: block;" /></a>
            <a href="{{instagramUrl}}" style="display: inline-block; margin: 0 8px;"><img src="` + iconImage + `" alt="Instagram" width="32" height="32" style="display: block;" /></a>
            <a href="{{linkedinUrl}}" style="display: inline-block; margin: 0 8px;"><img src="` + iconImage + `" alt="LinkedIn" width="32" height="32" style="display: block;" /></a>
        </td>
    </tr>
</table>
`

const footerSimple = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td align="center" style="padding: 24px; border-top: 1px solid {brandSecondary}20;">
            <p style="font-family: {brandFont}; font-size: 12px; color: {brandSecondary}; margin: 0 0 8px;">{{footerText}}</p>
            <p style="font-family: {brandFont}; font-size: 12px; color: {brandSecondary}; margin: 0;">
                <a href="{{unsubscribeUrl}}" style="color: {brandSecondary}; text-decoration: underline;">Unsubscribe</a> &bull;
                <a href="{{preferencesUrl}}" style="color: {brandSecondary}; text-decoration: underline;">Preferences</a> &bull;
                <a href="{{privacyUrl}}" style="color: {brandSecondary}; text-decoration: underline;">Privacy</a>
            </p>
        </td>
    </tr>
</table>
`

const divider = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="padding: 16px 24px;">
            <div style="border-top: 1px solid {brandSecondary}20; height: 1px;"></div>
        </td>
    </tr>
</table>
`

const spacer = `
<table width="100%" cellpadding="0" cellspacing="0" border="0" role="presentation">
    <tr>
        <td style="height: 24px; line-height: 24px; font-size: 1px;">&nbsp;</td>
    </tr>
</table>
`
